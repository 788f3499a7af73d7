package storable

import (
	"github.com/illuscio-dev/stowtools-go/dataurl"
	"github.com/illuscio-dev/stowtools-go/errors_api"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

/*
ToStorable converts an envelope's live payload into its storable form.

Dispatch is on the Body's runtime variant:

• nil or string: the envelope is returned unchanged.

• *stowtypes.Blob: a shallow copy is returned with Body cleared and Blob set to
the content's data url.

• *stowtypes.FormData: a shallow copy is returned with Body cleared and
Multipart set to the encoded record list. A nil container cannot be iterated
and is treated as having no payload: the body is dropped and no record list is
set.

A blob read failure fails the whole encode with a BlobReadError. Any other Body
type is an UnsupportedPayloadError.
*/
func ToStorable(envelope *Envelope) (*Envelope, error) {
	switch body := envelope.Body.(type) {
	case nil:
		return envelope, nil

	case string:
		return envelope, nil

	case *stowtypes.Blob:
		stored := *envelope
		stored.Body = nil

		if body == nil {
			return &stored, nil
		}

		raw, err := dataurl.Encode(body)
		if err != nil {
			return nil, errors_api.BlobReadError.New(
				"payload content could not be read for storage",
				map[string]interface{}{"url": envelope.URL},
				err,
			)
		}

		stored.Blob = raw
		return &stored, nil

	case *stowtypes.FormData:
		stored := *envelope
		stored.Body = nil

		if body == nil {
			return &stored, nil
		}

		records, err := EncodeForm(body)
		if err != nil {
			return nil, errors_api.BlobReadError.New(
				"multipart payload could not be read for storage",
				map[string]interface{}{"url": envelope.URL},
				err,
			)
		}

		stored.Multipart = records
		return &stored, nil

	default:
		return nil, errors_api.UnsupportedPayloadError.New(
			"payload is not a string, blob, or multipart container",
			map[string]interface{}{"url": envelope.URL},
			nil,
		)
	}
}

/*
FromStorable restores an envelope's live payload from its storable form. The
transform is synchronous -- restoring is a pure CPU transform with no
suspension points.

A Multipart record list decodes back into a form container; otherwise a Blob
data url decodes back into a blob; otherwise the envelope is returned
unchanged.

Restore never fails outright. Malformed stored data comes back as warnings for
the caller to log, and the storable field is discarded either way: a multipart
container is still returned with the affected fields emptied, while an
unreadable blob leaves the envelope with no live payload at all. Callers that
need the corrupt raw value for manual recovery must capture it before calling.
*/
func FromStorable(
	envelope *Envelope,
) (*Envelope, []*errors_api.StowError) {
	if envelope.Multipart != nil {
		restored := *envelope
		restored.Multipart = nil

		form, warnings := DecodeForm(envelope.Multipart)
		restored.Body = form
		return &restored, warnings
	}

	if envelope.Blob != "" {
		restored := *envelope
		restored.Blob = ""

		blob, err := dataurl.Decode(envelope.Blob)
		if err != nil {
			warning := errors_api.RestoreError.New(
				"stored payload could not be restored and was discarded",
				map[string]interface{}{"url": envelope.URL},
				err,
			)
			return &restored, []*errors_api.StowError{warning}
		}

		restored.Body = blob
		return &restored, nil
	}

	return envelope, nil
}
