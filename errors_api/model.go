package errors_api

import (
	"bytes"
	"fmt"
	"github.com/satori/go.uuid"
	"golang.org/x/xerrors"
	"runtime/debug"
	"strconv"

	"github.com/illuscio-dev/stowtools-go/encoding"
	"github.com/illuscio-dev/stowtools-go/mimetype"
)

// Interface for object that can set header information.
type headerSetter interface {
	Set(key string, value string)
}

/*
StowErrorType defines a TYPE of error the payload storage ecosystem can
surface. Each StowErrorType for a given ecosystem should have a unique Name and
APICode.

Codes 1000-1999 are reserved for stowtools' default error definitions.

Since types are declared as pointers, to protect against accidental mutation of
the error type by other packages, the underlying fields of this struct are
private and accessed through functions. Define new error types using
NewStowErrorType()
*/
type StowErrorType struct {
	// Unique human-readable name of the error type for the API ecosystem.
	name string

	// Unique number to identify the error type in the API ecosystem.
	apiCode int

	// HTTP code that should be returned when this error type is returned. Set to -1
	// if the http error is determined dynamically.
	httpCode int
}

// Returns a new stow error to be returned by the transform caller or panicked.
func (errorType *StowErrorType) New(
	message string,
	errorData map[string]interface{},
	source error,
) *StowError {
	stowError := StowError{
		StowErrorType: errorType,
		Message:       message,
		ID:            uuid.NewV4(),
		ErrorData:     errorData,
		sourceErr:     source,
		sourceStack:   debug.Stack(),
		frame:         xerrors.Caller(0),
	}
	return &stowError
}

/*
Creates a new error that is immediately passed to a panic. Expected to be
recovered by the caller's error middleware. Allows errors to be generated from
anywhere inside a transform without explicitly passing them up a chain of
nested function returns.
*/
func (errorType *StowErrorType) Panic(
	message string,
	errorData map[string]interface{},
	source error,
) {
	stowError := errorType.New(message, errorData, source)
	panic(stowError)
}

// Unique human-readable name of the error type for the API ecosystem.
func (errorType *StowErrorType) Name() string {
	return errorType.name
}

// Unique number to identify the error type in the API ecosystem.
func (errorType *StowErrorType) ApiCode() int {
	return errorType.apiCode
}

// HTTP code that should be returned when this error type is returned. Set to -1
// if the http error is determined dynamically.
func (errorType *StowErrorType) HttpCode() int {
	return errorType.httpCode
}

// Returns a copy of the error type with the given http code replaced.
func (errorType *StowErrorType) WithHttpCode(newHttpCode int) *StowErrorType {
	return &StowErrorType{
		name:     errorType.name,
		apiCode:  errorType.apiCode,
		httpCode: newHttpCode,
	}
}

// Allows the error type definition itself to also be a valid error for things like
// testing error equality.
func (errorType *StowErrorType) Error() string {
	return errorType.name +
		" (" + strconv.Itoa(errorType.apiCode) + ")"
}

// Used to return a specific error instance.
type StowError struct {
	// The type of error we are returning.
	*StowErrorType

	// A message detailing what caused the error.
	Message string

	// An id for the error being returned.
	ID uuid.UUID

	// A string / any mapping of data related to the error.
	ErrorData map[string]interface{}

	// If this error was returned because of another error, the original error is
	// stored here.
	sourceErr error

	// The debug.Stack() from where this error was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this error was instantiated.
	frame xerrors.Frame
}

// Returns true if the underlying type of this error is the same as errorType. Some
// errors may have multiple http codes possible, so we can't just compare ErrorType
// field equality directly.
func (stowError *StowError) IsType(errorType *StowErrorType) bool {
	return stowError.StowErrorType.Error() == errorType.Error()
}

// Error string to conform to builtin error interface.
func (stowError *StowError) Error() string {
	return stowError.StowErrorType.Error() + " - " + stowError.Message
}

// Implements xerrors.Wrapper interface. Part of how errors are being considered for
// implementation in future GO versions with more traceback support.
func (stowError *StowError) Unwrap() error {
	// implements xerrors.Wrapper
	return stowError.sourceErr
}

// More verbose error message that includes a debug.Stack() and source error
// information. This is not part of the Error(), Message, or ErrorData by default
// since it may contain sensitive information that is not desirable to return to the
// client.
func (stowError *StowError) LogMessage() string {
	loggerMessage := fmt.Sprint(
		// print the error
		"\nMESSAGE: ",
		stowError.Error(),
		"\nORIGINAL: ",
		stowError.sourceErr,
		"\nPANIC STACK:\n",
		string(stowError.sourceStack),
	)
	return loggerMessage
}

// Writes error to an object which implements a Set(key string, value string) method
// like http.Request or http.Response.
func (stowError *StowError) ToHeader(
	setter headerSetter, dataEngine encoding.ContentEngine,
) error {
	setter.Set("error-name", stowError.name)
	setter.Set("error-code", strconv.Itoa(stowError.apiCode))
	setter.Set("error-message", stowError.Message)
	setter.Set("error-id", stowError.ID.String())

	if stowError.ErrorData != nil {
		dataBytes := bytes.Buffer{}
		err := dataEngine.Encode(mimetype.JSON, stowError.ErrorData, &dataBytes)
		if err != nil {
			return err
		}
		setter.Set("error-data", dataBytes.String())
	}

	return nil
}
