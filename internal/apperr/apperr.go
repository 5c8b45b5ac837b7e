package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code classifies an Error so handlers can map it to an HTTP status.
type Code int

const (
	CodeMissingField Code = iota
	CodeMalformedID
	CodeInvalidReference
	CodeOutOfStock
	CodeInvalidEnum
	CodeDuplicate
	CodeNotFound
	CodeAuthRequired
	CodeInvalidCredentials
	CodeInternal
)

// Error is a classified domain error with a client facing message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus maps the error code to a response status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeMissingField, CodeMalformedID, CodeInvalidReference, CodeOutOfStock, CodeInvalidEnum:
		return http.StatusBadRequest
	case CodeDuplicate:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAuthRequired, CodeInvalidCredentials:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func MissingFields(fields []string) *Error {
	return &Error{Code: CodeMissingField, Message: fmt.Sprintf("Missing fields: %s", strings.Join(fields, ", "))}
}

func MalformedID(what string) *Error {
	return &Error{Code: CodeMalformedID, Message: fmt.Sprintf("Invalid UUID format for %s.", what)}
}

func InvalidReference(message string) *Error {
	return &Error{Code: CodeInvalidReference, Message: message}
}

func OutOfStock(message string) *Error {
	return &Error{Code: CodeOutOfStock, Message: message}
}

func InvalidEnum(message string) *Error {
	return &Error{Code: CodeInvalidEnum, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Code: CodeDuplicate, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func AuthRequired(message string) *Error {
	return &Error{Code: CodeAuthRequired, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Code: CodeInvalidCredentials, Message: message}
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code Code) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// HTTPStatus returns the status for any error; unclassified errors are 500.
func HTTPStatus(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.HTTPStatus()
	}
	return http.StatusInternalServerError
}
