package encoding

import (
	"gopkg.in/yaml.v2"
	"io"
)

// Handles encoding to / decoding from application/yaml. Stores that keep their
// documents human-editable tend to request this encoding.
type yamlEncoder struct{}

func (handler *yamlEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	yamlWriter := yaml.NewEncoder(writer)
	if err := yamlWriter.Encode(content); err != nil {
		return err
	}
	return yamlWriter.Close()
}

func (handler *yamlEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	return yaml.NewDecoder(reader).Decode(contentReceiver)
}
