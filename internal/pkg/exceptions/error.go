package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"finalform-service/internal/pkg/constvars"
)

// CustomError carries the taxonomy code alongside a client-safe message
// and a developer message with the capture location.
type CustomError struct {
	Code          string   `json:"code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Code, e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// IsCode reports whether err is a CustomError with the given taxonomy code.
func IsCode(err error, code string) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code == code
	}
	return false
}

// CodeOf returns the taxonomy code of err, or empty when err is not a CustomError.
func CodeOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return ""
}

func WrapWithoutError(code, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, code, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
	}
}

func BuildNewCustomError(err error, code, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	devMsg := devMessage
	if err != nil {
		devMsg = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMsg,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
