package display

import (
	"errors"
	"fmt"
)

// Code classifies inventory failures.
type Code int

const (
	CodeNone Code = iota
	// CodeNotRunning means the compositor-native listing tool was unreachable.
	CodeNotRunning
	// CodeToolUnavailable means the legacy listing tool was unreachable.
	CodeToolUnavailable
	CodeNoDisplaysFound
	CodeParseError
	// The remaining codes round out the classification shared with API
	// consumers; nothing here constructs them.
	CodeInvalidDisplayID
	CodeCommandExecutionFailed
	CodeSystemError
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeNotRunning:
		return "NotRunning"
	case CodeToolUnavailable:
		return "ToolUnavailable"
	case CodeNoDisplaysFound:
		return "NoDisplaysFound"
	case CodeInvalidDisplayID:
		return "InvalidDisplayId"
	case CodeCommandExecutionFailed:
		return "CommandExecutionFailed"
	case CodeParseError:
		return "ParseError"
	case CodeSystemError:
		return "SystemError"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is a classified inventory failure. Operations return it directly
// instead of parking state in a sticky last-error field.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the classification from err, or CodeNone when err is
// nil or not an inventory error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeNone
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}
