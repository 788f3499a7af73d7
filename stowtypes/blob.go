package stowtypes

import (
	"bytes"
	"golang.org/x/xerrors"
	"io"

	"github.com/illuscio-dev/stowtools-go/mimetype"
)

/*
Blob holds raw binary content along with the media type it was served or stored
with, and optionally the file name it carried when it arrived as part of a
multipart form.

A Blob is either byte-backed (created with NewBlob) or reader-backed (created
with NewBlobReader). A reader-backed Blob performs exactly one full read of its
source, at the first call to Bytes() -- typically when the blob is encoded to a
data url. The source is never re-read, so a Blob built from a one-shot stream
like a request body behaves correctly.

Blobs are immutable once constructed. WithFileName returns a shallow copy rather
than mutating in place.
*/
type Blob struct {
	mimeType mimetype.MimeType
	fileName string

	// One-shot source for reader-backed blobs. Consumed by the first successful
	// call to Bytes().
	source io.Reader

	data     []byte
	resolved bool
}

// NewBlob returns a byte-backed Blob. The incoming slice is copied so later
// mutations by the caller cannot alter the blob.
func NewBlob(data []byte, mimeType mimetype.MimeType) *Blob {
	held := make([]byte, len(data))
	copy(held, data)

	return &Blob{
		mimeType: mimeType,
		data:     held,
		resolved: true,
	}
}

// NewBlobReader returns a reader-backed Blob. The source is read in full on the
// first call to Bytes().
func NewBlobReader(source io.Reader, mimeType mimetype.MimeType) *Blob {
	return &Blob{
		mimeType: mimeType,
		source:   source,
	}
}

// WithFileName returns a copy of the blob carrying the given file name.
func (blob *Blob) WithFileName(fileName string) *Blob {
	newBlob := *blob
	newBlob.fileName = fileName
	return &newBlob
}

// The media type this blob's content is tagged with.
func (blob *Blob) MimeType() mimetype.MimeType {
	return blob.mimeType
}

// The file name the blob arrived with, or "" when it carried none.
func (blob *Blob) FileName() string {
	return blob.fileName
}

/*
Bytes returns the blob's full content. For a reader-backed blob the first call
reads the source to completion and caches the result; a failed read is returned
as an error and the blob stays unresolved.
*/
func (blob *Blob) Bytes() ([]byte, error) {
	if blob.resolved {
		return blob.data, nil
	}

	buffer := bytes.NewBuffer(make([]byte, 0))
	if _, err := buffer.ReadFrom(blob.source); err != nil {
		return nil, xerrors.Errorf("error reading blob source: %w", err)
	}

	blob.data = buffer.Bytes()
	blob.resolved = true
	blob.source = nil

	return blob.data, nil
}

// Size returns the byte length of the blob's content, or -1 when the blob is
// reader-backed and has not been resolved yet.
func (blob *Blob) Size() int {
	if !blob.resolved {
		return -1
	}
	return len(blob.data)
}
