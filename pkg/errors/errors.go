// Unified error handling for the FOAM toolpath compiler.
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import "fmt"

// ErrorCode represents the category of error
type ErrorCode string

const (
	// Profile errors
	ErrProfileDecode  ErrorCode = "PROFILE_DECODE"
	ErrProfileVariant ErrorCode = "PROFILE_VARIANT"
	ErrProfileMode    ErrorCode = "PROFILE_MODE"
	ErrProfileFile    ErrorCode = "PROFILE_FILE"

	// Geometry errors
	ErrGeometryDecode ErrorCode = "GEOMETRY_DECODE"

	// Program errors
	ErrProgramParse ErrorCode = "PROGRAM_PARSE"
	ErrProgramWrite ErrorCode = "PROGRAM_WRITE"

	// History store errors
	ErrHistoryOpen  ErrorCode = "HISTORY_OPEN"
	ErrHistoryStore ErrorCode = "HISTORY_STORE"
)

// CompileError is the unified error type for the compiler and its collaborators.
type CompileError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Err wraps the underlying error
	Err error

	// Context provides additional context
	Context map[string]interface{}
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// SetContext adds additional context
func (e *CompileError) SetContext(key string, value interface{}) *CompileError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new CompileError
func New(code ErrorCode, message string) *CompileError {
	return &CompileError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code ErrorCode, message string) *CompileError {
	return &CompileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Profile errors

// ProfileDecodeError creates an error for an undecodable profile encoding
func ProfileDecodeError(encoding string, err error) *CompileError {
	return Wrap(err, ErrProfileDecode, fmt.Sprintf("unable to decode %s profile", encoding))
}

// ProfileVariantError creates an error for an ambiguous printer type.
// An unknown variant is rejected rather than silently defaulted: defaulting
// here can target the wrong machine envelope.
func ProfileVariantError(printerType string) *CompileError {
	return New(ErrProfileVariant, fmt.Sprintf("unknown printer type %q (want Cartesian or Delta)", printerType)).
		SetContext("printer_type", printerType)
}

// ProfileModeError creates an error for an unknown process mode in an
// explicitly supplied profile
func ProfileModeError(mode string) *CompileError {
	return New(ErrProfileMode, fmt.Sprintf("unknown mode %q (want Hot, Clay or Pen)", mode)).
		SetContext("mode", mode)
}

// ProfileFileError creates an error for a profile file that cannot be read
func ProfileFileError(path string, err error) *CompileError {
	return Wrap(err, ErrProfileFile, fmt.Sprintf("unable to load profile %s", path)).
		SetContext("path", path)
}

// Geometry errors

// GeometryDecodeError creates an error for malformed geometry input
func GeometryDecodeError(reason string, err error) *CompileError {
	return Wrap(err, ErrGeometryDecode, fmt.Sprintf("malformed geometry: %s", reason))
}

// Program errors

// ProgramParseError creates an error for an unparseable instruction line
func ProgramParseError(line string, reason string) *CompileError {
	return New(ErrProgramParse, fmt.Sprintf("failed to parse instruction %q: %s", line, reason))
}

// ProgramWriteError creates an error for a failed program write
func ProgramWriteError(path string, err error) *CompileError {
	return Wrap(err, ErrProgramWrite, fmt.Sprintf("unable to write program to %s", path)).
		SetContext("path", path)
}

// History errors

// HistoryOpenError creates an error for a history store that cannot be opened
func HistoryOpenError(path string, err error) *CompileError {
	return Wrap(err, ErrHistoryOpen, fmt.Sprintf("unable to open history store %s", path))
}

// HistoryStoreError creates an error for a failed history insert or query
func HistoryStoreError(op string, err error) *CompileError {
	return Wrap(err, ErrHistoryStore, fmt.Sprintf("history %s failed", op))
}

// Is checks if error matches given error code
func Is(err error, code ErrorCode) bool {
	if ce, ok := err.(*CompileError); ok {
		return ce.Code == code
	}
	return false
}

// IsProfile checks if error is a profile error
func IsProfile(err error) bool {
	return Is(err, ErrProfileDecode) ||
		Is(err, ErrProfileVariant) ||
		Is(err, ErrProfileMode) ||
		Is(err, ErrProfileFile)
}

// IsProgram checks if error is a program error
func IsProgram(err error) bool {
	return Is(err, ErrProgramParse) ||
		Is(err, ErrProgramWrite)
}
