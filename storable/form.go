package storable

import (
	"github.com/illuscio-dev/stowtools-go/errors_api"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

/*
EncodeForm converts a multipart container into its storable record list.

Fields are processed one at a time, strictly in insertion order: a blob field's
content read completes before the next field is touched, so the emitted list
order always equals the source order and at most one field's content is being
read at any moment. Order is a correctness property of the storable form, not
an optimization target.

The container's text-part set decides which blob fields take the typed
text-part record shape. A nil container encodes to a nil list. Any field's read
failure fails the whole encode.
*/
func EncodeForm(form *stowtypes.FormData) ([]PartRecord, error) {
	if form == nil {
		return nil, nil
	}

	records := make([]PartRecord, 0, form.Len())

	for _, field := range form.Fields() {
		record, err := EncodePart(field, form.IsTextPart(field.Name))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

/*
DecodeForm builds a live container from a storable record list.

Records restore in list order; duplicate names append multiple fields,
mirroring multipart form semantics. A nil or empty list yields an empty
container -- decode never fails. Records that could not be restored come back
as empty fields, with one warning per affected record returned for the caller
to log.
*/
func DecodeForm(
	records []PartRecord,
) (*stowtypes.FormData, []*errors_api.StowError) {
	form := stowtypes.NewFormData()

	var warnings []*errors_api.StowError

	for _, record := range records {
		if warning := DecodePart(record, form); warning != nil {
			warnings = append(warnings, warning)
		}
	}

	return form, warnings
}
