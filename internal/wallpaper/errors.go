package wallpaper

import (
	"errors"
	"fmt"
)

// Code classifies wallpaper operation failures.
type Code int

const (
	CodeNone Code = iota
	CodeInvalidPath
	CodeUnsupportedFormat
	CodeFileNotFound
	// CodeNoPlacement means the display has no current wallpaper to act on.
	CodeNoPlacement
	// CodePreloadFailed means the preload step exited non-zero; the set
	// step is not attempted after it.
	CodePreloadFailed
	// CodeHyprlandCommandFailed means the control tool ran but reported
	// failure on the set or unload step.
	CodeHyprlandCommandFailed
	// CodeCommandExecutionFailed rounds out the classification shared
	// with API consumers; nothing here constructs it.
	CodeCommandExecutionFailed
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeInvalidPath:
		return "InvalidPath"
	case CodeUnsupportedFormat:
		return "UnsupportedFormat"
	case CodeFileNotFound:
		return "FileNotFound"
	case CodeNoPlacement:
		return "NoPlacement"
	case CodePreloadFailed:
		return "PreloadFailed"
	case CodeHyprlandCommandFailed:
		return "HyprlandCommandFailed"
	case CodeCommandExecutionFailed:
		return "CommandExecutionFailed"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is a classified wallpaper failure returned directly by each
// operation.
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

// CodeOf extracts the classification from err, walking wrapped and
// aggregated errors, or CodeNone when none applies.
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
