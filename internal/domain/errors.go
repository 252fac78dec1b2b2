package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrFormat indicates manifest text could not be understood
	ErrFormat = errors.New("invalid manifest format")

	// ErrIO indicates a read or write on the file system failed
	ErrIO = errors.New("i/o failure")

	// ErrInvalidConfig indicates a target definition or option is unusable
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds reported to operators
const (
	KindFormat = "format"
	KindIO     = "io"
	KindConfig = "config"
	KindOther  = "error"
)

// FormatError reports manifest text that lacks required structure.
// It matches ErrFormat and its cause with errors.Is.
type FormatError struct {
	Path string // empty when parsing in-memory text
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes every FormatError match ErrFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(path string, line int, err error) *FormatError {
	return &FormatError{
		Path: path,
		Line: line,
		Err:  err,
	}
}

// IOError wraps a failed file system operation
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes every IOError match ErrIO
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrInvalidConfig
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// TargetError ties a failure to the manifest destination it happened for
type TargetError struct {
	Dest  string
	Stage string
	Err   error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("target %s: %s error during %s: %v", e.Dest, ErrorKind(e.Err), e.Stage, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError
func NewTargetError(dest, stage string, err error) *TargetError {
	return &TargetError{
		Dest:  dest,
		Stage: stage,
		Err:   err,
	}
}

// ErrorKind classifies err as KindFormat, KindIO, KindConfig or KindOther
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrInvalidConfig):
		return KindConfig
	}
	return KindOther
}
