package storable

import (
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/stowtools-go/dataurl"
	"github.com/illuscio-dev/stowtools-go/errors_api"
	"github.com/illuscio-dev/stowtools-go/mimetype"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

/*
EncodePart converts one form field into its storable record.

A literal text field passes through untouched. A blob field encodes its content
to a data url; isTextBlob selects between the file shape (IsFile true, FileName
carried over) and the typed text-part shape (IsFile false, Type set, no file
name). A failed blob read fails the encode.
*/
func EncodePart(
	field stowtypes.FormField, isTextBlob bool,
) (PartRecord, error) {
	if !field.IsBlob() {
		return PartRecord{Name: field.Name, Value: field.Text}, nil
	}

	value, err := dataurl.Encode(field.Blob)
	if err != nil {
		return PartRecord{}, xerrors.Errorf(
			"error encoding part '%v': %w", field.Name, err,
		)
	}

	if isTextBlob {
		return PartRecord{
			Name:  field.Name,
			Value: value,
			Type:  field.Blob.MimeType(),
		}, nil
	}

	return PartRecord{
		Name:     field.Name,
		Value:    value,
		IsFile:   true,
		FileName: field.Blob.FileName(),
	}, nil
}

/*
DecodePart restores one storable record as a field appended to form.

File records and typed text-part records decode their data url back into a
blob; a text-part record additionally marks its name in the container's
text-part set so a later re-encode keeps the same record shape. Records with
neither marker restore as literal text.

A record whose data url fails to decode does NOT abort the restore: the field
is appended as empty text and the failure is returned as a non-fatal warning
for the caller to log. One corrupt record should not take the rest of the
container down with it.
*/
func DecodePart(
	record PartRecord, form *stowtypes.FormData,
) *errors_api.StowError {
	// Literal text field.
	if !record.IsFile && record.Type == mimetype.UNKNOWN {
		form.AppendText(record.Name, record.Value)
		return nil
	}

	blob, err := dataurl.Decode(record.Value)
	if err != nil {
		form.AppendText(record.Name, "")
		return errors_api.PartDecodeError.New(
			"part '"+record.Name+"' could not be restored and was "+
				"replaced with an empty value",
			map[string]interface{}{"part": record.Name},
			err,
		)
	}

	if record.IsFile {
		if record.FileName != "" {
			blob = blob.WithFileName(record.FileName)
		}
		form.AppendBlob(record.Name, blob)
		return nil
	}

	form.AppendBlob(record.Name, blob)
	form.MarkTextPart(record.Name)
	return nil
}
