package encoding_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"bytes"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/illuscio-dev/stowtools-go/mimetype"
	"github.com/illuscio-dev/stowtools-go/storable"
	"github.com/illuscio-dev/stowtools-go/stowtypes"
)

func TestBSONListRoundTrip(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	data := []Name{
		{
			First: "Harry",
			Last:  "Potter",
		},
		{
			First: "Hermione",
			Last:  "Granger",
		},
		{
			First: "Ron",
			Last:  "Weasley",
		},
	}

	buffer := &bytes.Buffer{}

	err := engine.Encode(mimetype.BSON, &data, buffer)
	if err != nil {
		test.Error(err)
	}

	test.Log("DUMPED:", buffer.String())

	loaded := make([]Name, 0)
	err = engine.Decode(mimetype.BSON, &loaded, buffer)
	if err != nil {
		test.Error(err)
	}

	test.Log("ELEMENT 1:", loaded[0].First)
	assert.Equal(data, loaded)
}

func TestBSONListRoundTripPointers(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	data := []*Name{
		{
			First: "Harry",
			Last:  "Potter",
		},
		{
			First: "Hermione",
			Last:  "Granger",
		},
		{
			First: "Ron",
			Last:  "Weasley",
		},
	}

	buffer := &bytes.Buffer{}

	err := engine.Encode(mimetype.BSON, &data, buffer)
	if err != nil {
		test.Error(err)
	}

	test.Log("DUMPED:", buffer.String())

	loaded := make([]*Name, 0)
	err = engine.Decode(mimetype.BSON, &loaded, buffer)
	if err != nil {
		test.Error(err)
	}

	test.Log("ELEMENT 1:", loaded[0].First)
	assert.Equal(data, loaded)
}

// A multipart record list is the payload bson encoding exists for: multiple
// documents in one payload, in container order.
func TestBSONRecordListRoundTrip(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	data := []storable.PartRecord{
		{
			Name:     "file",
			Value:    "data:text/plain;base64,Kioq",
			IsFile:   true,
			FileName: "file-name",
		},
		{
			Name:  "text",
			Value: "abcd",
		},
		{
			Name:  "text-part",
			Value: "data:text/plain;base64,Kioq",
			Type:  mimetype.TEXT,
		},
	}

	buffer := &bytes.Buffer{}

	err := engine.Encode(mimetype.BSON, &data, buffer)
	if err != nil {
		test.Error(err)
	}

	loaded := make([]storable.PartRecord, 0)
	err = engine.Decode(mimetype.BSON, &loaded, buffer)
	if err != nil {
		test.Error(err)
	}

	assert.Equal(data, loaded)
}

func TestUUIDToBSON(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	type Receiver struct {
		Data uuid.UUID
	}

	data := Receiver{Data: uuid.NewV4()}

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.BSON, &data, &buffer)
	if err != nil {
		test.Error(err)
	}

	test.Logf("Dumped: %s", buffer.String())

	loaded := Receiver{}
	err = engine.Decode(mimetype.BSON, &loaded, &buffer)
	if err != nil {
		test.Error(err)
	}

	assert.Equal(data.Data, loaded.Data)
}

func TestBlobToBSON(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	type Receiver struct {
		Data stowtypes.Blob
	}

	data := Receiver{Data: *stowtypes.NewBlob([]byte("***"), mimetype.TEXT)}

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.BSON, &data, &buffer)
	if err != nil {
		test.Error(err)
	}

	// The blob must land in the document as its data url string.
	assert.Contains(buffer.String(), "data:text/plain;base64,Kioq")

	loaded := Receiver{}
	err = engine.Decode(mimetype.BSON, &loaded, &buffer)
	if err != nil {
		test.Error(err)
	}

	assert.Equal(mimetype.TEXT, loaded.Data.MimeType())

	content, err := loaded.Data.Bytes()
	assert.Nil(err)
	assert.Equal([]byte("***"), content)
}

func TestBlobBSONReadFailure(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	type Receiver struct {
		Data stowtypes.Blob
	}

	data := Receiver{
		Data: *stowtypes.NewBlobReader(errReader{}, mimetype.OCTET),
	}

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.BSON, &data, &buffer)

	assert.NotNil(err)
	assert.Contains(err.Error(), "error encoding blob to data url")
}

func TestErrorDecodingUUID(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)
	buffer := &bytes.Buffer{}

	type TestData struct {
		ID uuid.UUID
	}

	data := map[string]string{"Id": "not an Id"}

	err := engine.Encode(mimetype.BSON, data, buffer)
	if err != nil {
		test.Error(err)
	}

	receiver := &TestData{}
	err = engine.Decode(mimetype.BSON, receiver, buffer)
	assert.EqualError(
		err,
		"decode err: uuid: UUID must be exactly 16 bytes long, got 0 bytes",
	)
}

func TestErrorMarshall(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)
	buffer := &bytes.Buffer{}

	data := "I am a string"

	err := engine.Encode(mimetype.BSON, data, buffer)
	assert.EqualError(
		err,
		"encode err: WriteString can only write while positioned on a "+
			"Element or Value but is positioned on a TopLevel",
	)
}

func TestBSONListMustBePointer(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	data := []*Name{
		{
			First: "Harry",
			Last:  "Potter",
		},
	}

	buffer := &bytes.Buffer{}

	err := engine.Encode(mimetype.BSON, &data, buffer)
	if err != nil {
		test.Error(err)
	}

	test.Log("DUMPED:", buffer.String())

	loaded := make([]*Name, 0)
	err = engine.Decode(mimetype.BSON, loaded, buffer)

	assert.EqualError(err, "decode err: slice receiver must be pointer")
}

func TestBSONListDecodeErrorWithElement(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	data := []*Name{
		{
			First: "Harry",
			Last:  "Potter",
		},
	}

	buffer := &bytes.Buffer{}

	err := engine.Encode(mimetype.BSON, &data, buffer)
	if err != nil {
		test.Error(err)
	}

	type NotName struct {
		First int
		Last  int
	}

	test.Log("DUMPED:", buffer.String())

	loaded := make([]*NotName, 0)
	err = engine.Decode(mimetype.BSON, &loaded, buffer)
	assert.EqualError(
		err, "decode err: cannot decode string into an integer type",
	)
}
