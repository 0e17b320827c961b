// Package errors defines the coded errors toplangs returns at its edges.
//
// Rendering itself cannot fail: an empty selection or a zero total still
// yields a card. Errors come from reading stats files, checking CLI flags,
// running rsvg-convert and decoding HTTP bodies. Each carries a Code that
// callers branch on and that the HTTP layer maps to a status:
//
//	INVALID_*       bad input, HTTP 400
//	*NOT_FOUND      missing file or resource, HTTP 404
//	TOO_LARGE       request body over the size limit, HTTP 413
//	UNSUPPORTED     format or feature not available, HTTP 501
//	INTERNAL_ERROR  anything else, HTTP 500
//
// Example:
//
//	set, err := io.ImportFile(path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    fmt.Println(errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidLayout   Code = "INVALID_LAYOUT"
	ErrCodeInvalidTheme    Code = "INVALID_THEME"
	ErrCodeInvalidLanguage Code = "INVALID_LANGUAGE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeTooLarge Code = "TOO_LARGE"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a message for the user and, when wrapping, the
// underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes Cause to the standard errors package.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error without a cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error that keeps cause in its chain.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause from coded errors. Other
// errors are returned as err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the status the HTTP endpoint reports.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidLayout,
		ErrCodeInvalidTheme, ErrCodeInvalidLanguage, ErrCodeInvalidPath:
		return 400
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return 404
	case ErrCodeTooLarge:
		return 413
	case ErrCodeUnsupported:
		return 501
	default:
		return 500
	}
}
