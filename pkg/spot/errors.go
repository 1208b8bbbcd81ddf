package spot

import (
	"errors"
	"fmt"
)

// Code is a machine-readable rejection reason. The boundary layer switches
// on codes to render specific, actionable messages.
type Code string

const (
	CodeInvalidStage        Code = "invalid_stage"
	CodeInvalidVsPosition   Code = "invalid_vs_position"
	CodeInvalidBlindVsBlind Code = "invalid_blind_vs_blind"
	CodeStackOutOfRange     Code = "stack_out_of_range"
	CodeMissingBaselineData Code = "missing_baseline_data"
	CodeInvalidContext      Code = "invalid_context"
	CodeIllegalAction       Code = "illegal_action"
	CodeWrongActor          Code = "wrong_actor"
	CodeUnknownAction       Code = "unknown_action"
)

// Error is a structured rejection: a code plus a human-readable message.
// Engine operations return it as a plain error value, never panic.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf builds a coded rejection with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rejection code from an error, or empty when the
// error is not a structured rejection.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
