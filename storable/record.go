package storable

import (
	"github.com/illuscio-dev/stowtools-go/mimetype"
)

/*
PartRecord is the storable form of one multipart field.

The three populated shapes are:

• IsFile true: the field was a file / blob. Value is a data url and FileName
carries the original file name when the field had one.

• IsFile false with Type set: the field was blob-backed but semantically text.
Value is a data url that decodes to the text content.

• IsFile false with no Type: Value is the literal text content.

FileName and Type are mutually exclusive in practice (a record is either a file
or a typed text part, never both), though the schema does not hard-enforce
this.
*/
type PartRecord struct {
	Name   string `json:"name" bson:"name" yaml:"name"`
	Value  string `json:"value" bson:"value" yaml:"value"`
	IsFile bool   `json:"isFile" bson:"isFile" yaml:"isFile"`

	FileName string `json:"fileName,omitempty" bson:"fileName,omitempty" yaml:"fileName,omitempty"`

	Type mimetype.MimeType `json:"type,omitempty" bson:"type,omitempty" yaml:"type,omitempty"`
}

/*
Envelope is a request in transit between its live and storable forms. The
metadata fields ride along untouched; the engine only inspects and rewrites the
payload fields.

Body is the live payload and is one of:

• nil -- no payload

• string -- a plain text body

• *stowtypes.Blob -- a binary body

• *stowtypes.FormData -- a multipart body

Body is never persisted. After ToStorable, a binary body lives in Blob as a
data url and a multipart body lives in Multipart as an ordered record list; at
most one of Body / Blob / Multipart is meaningfully populated on any envelope.
*/
type Envelope struct {
	URL     string                 `json:"url,omitempty" bson:"url,omitempty" yaml:"url,omitempty"`
	Method  string                 `json:"method,omitempty" bson:"method,omitempty" yaml:"method,omitempty"`
	Headers map[string]string      `json:"headers,omitempty" bson:"headers,omitempty" yaml:"headers,omitempty"`
	Params  map[string]string      `json:"params,omitempty" bson:"params,omitempty" yaml:"params,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty" yaml:"meta,omitempty"`

	// Live payload. Never persisted.
	Body interface{} `json:"-" bson:"-" yaml:"-"`

	// Storable binary payload as a data url.
	Blob string `json:"blob,omitempty" bson:"blob,omitempty" yaml:"blob,omitempty"`

	// Storable multipart payload, in the source container's field order.
	Multipart []PartRecord `json:"multipart,omitempty" bson:"multipart,omitempty" yaml:"multipart,omitempty"`
}
