/*
Conversion between blob content and data url strings.

A data url is the storable text form of a blob:

	data:<media-type>;base64,<payload>

The payload uses the standard base64 alphabet with padding, and the only
parameter carried is the bare media type. This is a wire format -- an encoded
blob must decode to identical bytes and media type on any other implementation
of the same scheme.
*/
package dataurl

import (
	"encoding/base64"
	"golang.org/x/xerrors"
	"strings"

	"github.com/illuscio-dev/stowtools-go/mimetype"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

// Prefix is the scheme marker every data url starts with.
const Prefix = "data:"

// base64Marker separates the media type from the encoded payload.
const base64Marker = ";base64,"

// ErrInvalidDataURL is wrapped by every parse failure returned from Decode, so
// callers can classify format errors with xerrors.Is.
var ErrInvalidDataURL = xerrors.New("invalid data url")

/*
Encode renders blob as a data url string. A reader-backed blob is read in full
here -- this is the single point the engine performs I/O, and a failed read
fails the whole encode.
*/
func Encode(blob *stowtypes.Blob) (string, error) {
	data, err := blob.Bytes()
	if err != nil {
		return "", xerrors.Errorf("error reading blob content: %w", err)
	}

	return Prefix +
		string(blob.MimeType()) +
		base64Marker +
		base64.StdEncoding.EncodeToString(data), nil
}

/*
Decode parses raw as a data url and returns the blob it describes. The media
type is the text between "data:" and the first ";", carried through verbatim --
no normalization -- so a round trip reproduces the original string bit-for-bit.

Malformed input (missing prefix, empty media type, missing ";base64," marker,
bad base64 payload) returns an error wrapping ErrInvalidDataURL.
*/
func Decode(raw string) (*stowtypes.Blob, error) {
	if !strings.HasPrefix(raw, Prefix) {
		return nil, xerrors.Errorf("missing data prefix: %w", ErrInvalidDataURL)
	}
	remainder := raw[len(Prefix):]

	typeEnd := strings.Index(remainder, ";")
	if typeEnd == -1 {
		return nil, xerrors.Errorf(
			"missing media type delimiter: %w", ErrInvalidDataURL,
		)
	}
	if typeEnd == 0 {
		return nil, xerrors.Errorf("missing media type: %w", ErrInvalidDataURL)
	}

	if !strings.HasPrefix(remainder[typeEnd:], base64Marker) {
		return nil, xerrors.Errorf(
			"missing base64 marker: %w", ErrInvalidDataURL,
		)
	}

	payload := remainder[typeEnd+len(base64Marker):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, xerrors.Errorf(
			"bad base64 payload: %v: %w", err, ErrInvalidDataURL,
		)
	}

	mediaType := mimetype.MimeType(remainder[:typeEnd])
	return stowtypes.NewBlob(data, mediaType), nil
}
