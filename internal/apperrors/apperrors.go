// Package apperrors carries an HTTP status on error values so that data
// access and service code can decide the response code once, close to the
// failure, and handlers only translate it into the JSON envelope.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(http.StatusConflict, format, args...)
}

// Unauthorized maps to 403: missing/expired tokens and bad credentials
// share one generic status so accounts cannot be enumerated.
func Unauthorized(format string, args ...any) *Error {
	return New(http.StatusForbidden, format, args...)
}

func Internal(format string, args ...any) *Error {
	return New(http.StatusInternalServerError, format, args...)
}

// Wrap keeps an already-coded error as is and turns anything else into a
// 500 with the given message.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}
	return Internal(format, args...)
}

// StatusOf extracts the carried status, defaulting to 500.
func StatusOf(err error) int {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Status
	}
	return http.StatusInternalServerError
}
