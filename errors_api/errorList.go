package errors_api

// Base Error. Used when a generic error is surfaced by the transform engine.
var TransformError = NewStowErrorType(
	"TransformError",
	1000,
	502,
)

// A blob's content source could not be read while encoding a payload for
// storage. The whole encode for that payload fails.
var BlobReadError = NewStowErrorType(
	"BlobReadError",
	1001,
	502,
)

// A stored data url string did not match the data:<type>;base64,<payload>
// shape or carried an invalid base64 payload.
var DataURLFormatError = NewStowErrorType(
	"DataURLFormatError",
	1002,
	400,
)

// A stored multipart part record could not be restored. The affected field is
// replaced with an empty value and the rest of the container is still loaded.
var PartDecodeError = NewStowErrorType(
	"PartDecodeError",
	1003,
	400,
)

// A stored blob payload could not be restored. The storable field is discarded
// and the envelope is returned without a live payload.
var RestoreError = NewStowErrorType(
	"RestoreError",
	1004,
	400,
)

// An envelope's live payload is not one of the supported runtime variants.
var UnsupportedPayloadError = NewStowErrorType(
	"UnsupportedPayloadError",
	1005,
	400,
)

// List of default StowError definitions.
var ErrorList = [6]*StowErrorType{
	TransformError,
	BlobReadError,
	DataURLFormatError,
	PartDecodeError,
	RestoreError,
	UnsupportedPayloadError,
}

// Used to make ErrorTypeCodeIndex.
func makeDefaultErrorCodeIndex() map[int]*StowErrorType {
	index := make(map[int]*StowErrorType)
	for _, errorType := range ErrorList {
		index[errorType.apiCode] = errorType
	}
	return index
}

// ApiCode:*ErrorType indexing of default errors.
var ErrorTypeCodeIndex = makeDefaultErrorCodeIndex()
