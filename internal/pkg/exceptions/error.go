package exceptions

import (
	"errors"
	"fmt"
	"medilabx-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Locations     []Location        `json:"locations,omitempty"`

	// ServerMessage is the `message` the lab backend answered with, if any.
	ServerMessage  string `json:"-"`
	FromLabBackend bool   `json:"-"`
	cause          error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err into a CustomError. When err already is a
// CustomError its locations and upstream message are carried over.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		cause:         err,
	}

	var previous *CustomError
	if errors.As(err, &previous) {
		customErr.ServerMessage = previous.ServerMessage
		customErr.FromLabBackend = previous.FromLabBackend
		customErr.Fields = previous.Fields
		customErr.Locations = append(customErr.Locations, previous.Locations...)
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, previous.DevMessage)
	} else if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	customErr.Locations = append([]Location{getLocation(3)}, customErr.Locations...)
	return customErr
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
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
