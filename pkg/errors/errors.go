// Package errors defines coded errors for the markup engine.
//
// Every error the CLI reports carries a [Code]: INVALID_* for rejected
// input, *_NOT_FOUND for missing files and INTERNAL_ERROR for bugs. The
// engine itself only fails while decoding: markup that does not follow the
// tag grammar yields [ErrCodeInvalidMarkup]. Resolution and rendering are
// total.
//
//	err := errors.Wrap(errors.ErrCodeInvalidMarkup, syntaxErr, "parse %s", path)
//	if errors.Is(err, errors.ErrCodeInvalidMarkup) {
//	    fmt.Println(errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for exit handling and tests.
type Code string

const (
	// Rejected input.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidMarkup Code = "INVALID_MARKUP"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidRoster Code = "INVALID_ROSTER"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// An export needs a tool that is not installed.
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Error carries a Code, a message for the user and the error that caused
// it, such as a *markup.SyntaxError.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost Error in err's chain has code. Plain
// fmt.Errorf("%w") wrappers are looked through.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost Error without its code
// and cause, or err.Error() for other errors.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
