package stowtypes

import (
	"sort"
)

// FormField is a single named entry of a FormData container. A field holds
// either literal text or a blob -- when Blob is nil, Text is the field's value.
type FormField struct {
	Name string
	Text string
	Blob *Blob
}

// Whether this field holds blob content rather than literal text.
func (field FormField) IsBlob() bool {
	return field.Blob != nil
}

/*
FormData is an ordered multipart container. Fields are append-only and iterate
in insertion order; the same name may occur more than once, mirroring multipart
form semantics.

FormData also carries the container's text-part names: the set of field names
that are blob-backed but semantically text. An empty text field and an empty
blob are indistinguishable by content, so this set must travel WITH the
container rather than be inferred from it. Pairing the set and the field list
in one value keeps the marking off of caller-owned structures.
*/
type FormData struct {
	fields    []FormField
	textParts map[string]struct{}
}

// NewFormData returns an empty container.
func NewFormData() *FormData {
	return &FormData{
		textParts: make(map[string]struct{}),
	}
}

// AppendText adds a literal text field to the end of the container.
func (form *FormData) AppendText(name string, value string) {
	form.fields = append(form.fields, FormField{Name: name, Text: value})
}

// AppendBlob adds a blob field to the end of the container.
func (form *FormData) AppendBlob(name string, blob *Blob) {
	form.fields = append(form.fields, FormField{Name: name, Blob: blob})
}

// Fields returns the container's fields in insertion order. The returned slice
// is shared with the container and must not be mutated.
func (form *FormData) Fields() []FormField {
	return form.fields
}

// Number of fields in the container.
func (form *FormData) Len() int {
	return len(form.fields)
}

// MarkTextPart records name as holding blob-backed text content. The set is
// created on first use, so a zero-value container is safe to mark.
func (form *FormData) MarkTextPart(name string) {
	if form.textParts == nil {
		form.textParts = make(map[string]struct{})
	}
	form.textParts[name] = struct{}{}
}

// Whether name has been marked as holding blob-backed text content.
func (form *FormData) IsTextPart(name string) bool {
	_, ok := form.textParts[name]
	return ok
}

// TextParts returns the marked names in sorted order.
func (form *FormData) TextParts() []string {
	names := make([]string, 0, len(form.textParts))
	for name := range form.textParts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
