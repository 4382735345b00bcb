package demandstreams

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the stage kind that produced a stage error.
type ErrorCode int

const (
	MAP ErrorCode = iota
	FILTER
	DEDUPE
	EXPAND
	RETRY
)

// String converts ErrorCode enum into a string value
func (c ErrorCode) String() string {
	return [...]string{
		"MAP",
		"FILTER",
		"DEDUPE",
		"EXPAND",
		"RETRY",
	}[c]
}

// Message converts ErrorCode enum into a human-readable message
func (c ErrorCode) Message(msg string, segment string) string {
	return fmt.Sprintf(
		"stage %s error (code: %d segment: %s, message: %s)", c.String(), c, segment, msg,
	)
}

// Error is the typed error carried by a Failed signal when a stage's user
// function fails. It wraps the cause for errors.Is / errors.As.
type Error struct {
	Code    ErrorCode
	Segment string
	Message string
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the user function error that failed the stage.
func (e *Error) Unwrap() error {
	return e.cause
}

// Stage returns the segment name the error originated from.
func (e *Error) Stage() string {
	return e.Segment
}

func newError(code ErrorCode, segment string, err error) error {
	return &Error{
		Code:    code,
		Segment: segment,
		Message: code.Message(err.Error(), segment),
		cause:   err,
	}
}

func newMapError(segment string, err error) error {
	return newError(MAP, segment, err)
}

func newFilterError(segment string, err error) error {
	return newError(FILTER, segment, err)
}

func newDedupeError(segment string, err error) error {
	return newError(DEDUPE, segment, err)
}

func newExpandError(segment string, err error) error {
	return newError(EXPAND, segment, err)
}

func newRetryError(segment string, err error) error {
	return newError(RETRY, segment, err)
}

func isError(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsMapError checks if the given error is a MAP error.
// It returns true if the error is a MAP error, otherwise false.
func IsMapError(err error) bool {
	return isError(err, MAP)
}

// IsFilterError checks if the given error is a FILTER error.
// It returns true if the error is a FILTER error, otherwise false.
func IsFilterError(err error) bool {
	return isError(err, FILTER)
}

// IsDedupeError checks if the given error is a DEDUPE error.
// It returns true if the error is a DEDUPE error, otherwise false.
func IsDedupeError(err error) bool {
	return isError(err, DEDUPE)
}

// IsExpandError checks if the given error is an EXPAND error.
// It returns true if the error is an EXPAND error, otherwise false.
func IsExpandError(err error) bool {
	return isError(err, EXPAND)
}

func IsRetryError(err error) bool {
	return isError(err, RETRY)
}
