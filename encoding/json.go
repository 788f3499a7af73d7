package encoding

import (
	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"
	"io"
	"reflect"

	"github.com/illuscio-dev/stowtools-go/dataurl"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

// JSONExtensionOpts holds options for a JsonHandle extension to add to the handle on
// engine setup.
type JSONExtensionOpts struct {
	ValueType    reflect.Type
	ExtInterface codec.InterfaceExt
}

// defaultJSONExtensions holds all the JSONExtensionOpts to add to the JSONHandle on
// engine setup
var defaultJSONExtensions = []*JSONExtensionOpts{
	{
		ValueType:    reflect.TypeOf(stowtypes.Blob{}),
		ExtInterface: &jsonExtBlob{},
	},
}

// Converts blob values to their data url form for json transport and back. A
// reader-backed blob is resolved here, so a failed content read surfaces as an
// encode error.
type jsonExtBlob struct{}

func (ext *jsonExtBlob) ConvertExt(value interface{}) interface{} {
	valueBlob := value.(*stowtypes.Blob)

	raw, err := dataurl.Encode(valueBlob)
	if err != nil {
		panic(xerrors.Errorf("error encoding blob to data url: %w", err))
	}
	return raw
}

func (ext *jsonExtBlob) UpdateExt(dest interface{}, value interface{}) {
	raw, ok := value.(string)
	if !ok {
		panic(xerrors.New("blob field must be decoded from a data url string"))
	}

	blob, err := dataurl.Decode(raw)
	if err != nil {
		panic(xerrors.Errorf("error decoding data url to blob: %w", err))
	}

	destBlob := dest.(*stowtypes.Blob)
	*destBlob = *blob
}

// default JSON encoder for StowEngine.
type jsonEncoder struct{}

func (encoder *jsonEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	stowEngine := engine.(*StowEngine)
	jsonEncoder := codec.NewEncoder(writer, stowEngine.jsonHandle)
	return jsonEncoder.Encode(content)
}

func (encoder *jsonEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	stowEngine := engine.(*StowEngine)
	jsonDecoder := codec.NewDecoder(reader, stowEngine.jsonHandle)
	return jsonDecoder.Decode(contentReceiver)
}
