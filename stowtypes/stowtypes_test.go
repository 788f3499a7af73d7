package stowtypes_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
	"strings"
	"testing"

	"github.com/illuscio-dev/stowtools-go/mimetype"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

// Reader that always fails, for exercising blob read errors.
type errReader struct{}

func (reader errReader) Read(p []byte) (n int, err error) {
	return 0, xerrors.New("mock read error")
}

func TestBlobBytes(test *testing.T) {
	assert := assert.New(test)

	source := []byte("***")
	blob := stowtypes.NewBlob(source, mimetype.TEXT)

	// Mutating the source slice must not alter the blob.
	source[0] = 'x'

	data, err := blob.Bytes()
	assert.Nil(err)
	assert.Equal([]byte("***"), data)
	assert.Equal(3, blob.Size())
	assert.Equal(mimetype.TEXT, blob.MimeType())
	assert.Equal("", blob.FileName())
}

func TestBlobReaderResolvesOnce(test *testing.T) {
	assert := assert.New(test)

	blob := stowtypes.NewBlobReader(
		strings.NewReader("Test Data."), mimetype.OCTET,
	)

	// Unresolved blobs report no size.
	assert.Equal(-1, blob.Size())

	data, err := blob.Bytes()
	assert.Nil(err)
	assert.Equal([]byte("Test Data."), data)
	assert.Equal(10, blob.Size())

	// A second read returns the cached content rather than touching the
	// exhausted source.
	data, err = blob.Bytes()
	assert.Nil(err)
	assert.Equal([]byte("Test Data."), data)
}

func TestBlobReadError(test *testing.T) {
	assert := assert.New(test)

	blob := stowtypes.NewBlobReader(errReader{}, mimetype.OCTET)

	_, err := blob.Bytes()
	assert.EqualError(err, "error reading blob source: mock read error")
	assert.Equal(-1, blob.Size())
}

func TestBlobWithFileName(test *testing.T) {
	assert := assert.New(test)

	blob := stowtypes.NewBlob([]byte("***"), mimetype.TEXT)
	named := blob.WithFileName("file-name")

	assert.Equal("file-name", named.FileName())
	// The original blob is untouched.
	assert.Equal("", blob.FileName())

	data, err := named.Bytes()
	assert.Nil(err)
	assert.Equal([]byte("***"), data)
}

func TestFormDataOrder(test *testing.T) {
	assert := assert.New(test)

	form := stowtypes.NewFormData()
	form.AppendText("first", "1")
	form.AppendBlob("second", stowtypes.NewBlob([]byte("2"), mimetype.TEXT))
	form.AppendText("third", "3")

	assert.Equal(3, form.Len())

	fields := form.Fields()
	assert.Equal("first", fields[0].Name)
	assert.Equal("second", fields[1].Name)
	assert.Equal("third", fields[2].Name)

	assert.False(fields[0].IsBlob())
	assert.True(fields[1].IsBlob())
	assert.False(fields[2].IsBlob())
}

func TestFormDataDuplicateNames(test *testing.T) {
	assert := assert.New(test)

	form := stowtypes.NewFormData()
	form.AppendText("tag", "one")
	form.AppendText("tag", "two")

	assert.Equal(2, form.Len())
	assert.Equal("one", form.Fields()[0].Text)
	assert.Equal("two", form.Fields()[1].Text)
}

func TestFormDataTextParts(test *testing.T) {
	assert := assert.New(test)

	form := stowtypes.NewFormData()
	form.AppendBlob("text-part", stowtypes.NewBlob([]byte("***"), mimetype.TEXT))
	form.AppendBlob("file", stowtypes.NewBlob([]byte("***"), mimetype.TEXT))

	form.MarkTextPart("text-part")
	form.MarkTextPart("another")

	assert.True(form.IsTextPart("text-part"))
	assert.False(form.IsTextPart("file"))

	assert.Equal([]string{"another", "text-part"}, form.TextParts())
}

// A zero-value container must behave like an empty one, marking included.
func TestFormDataZeroValue(test *testing.T) {
	assert := assert.New(test)

	form := &stowtypes.FormData{}

	assert.Equal(0, form.Len())
	assert.False(form.IsTextPart("text-part"))

	form.AppendBlob("text-part", stowtypes.NewBlob([]byte("***"), mimetype.TEXT))
	form.MarkTextPart("text-part")

	assert.True(form.IsTextPart("text-part"))
	assert.Equal([]string{"text-part"}, form.TextParts())
}
