// Package errors provides standardized error handling for the batchrename
// application. It defines the error kinds raised by the rename pipeline and
// typed wrappers that carry enough context for the operator to correct the
// input and retry the current stage.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds raised by the rename pipeline
const (
	Unknown ErrorKind = iota
	// File set validation kinds
	NotFound
	InvalidTarget
	EmptySet
	MixedExtensions
	DisallowedExtension
	// Template and generation kinds
	MissingColumn
	InvalidCharacters
	// Execution kinds
	CountMismatch
	RenameFailure
	SplitFailure
	// Config kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors raised while validating or mutating the file set
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ColumnError reports selected fields that are absent from the bound table.
// All missing columns are enumerated in one failure rather than stopping at
// the first.
type ColumnError struct {
	ApplicationError
	columns []string
}

// NewColumnError creates a new column error
func NewColumnError(msg string, columns []string) *ColumnError {
	return &ColumnError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: MissingColumn,
		},
		columns: columns,
	}
}

// Error returns the column error message
func (e *ColumnError) Error() string {
	if len(e.columns) > 0 {
		return fmt.Sprintf("%s: %s", e.msg, strings.Join(e.columns, ", "))
	}
	return e.ApplicationError.Error()
}

// Columns returns the missing column names
func (e *ColumnError) Columns() []string {
	return e.columns
}

// CountError reports a mismatch between the file count and the generated
// name count, naming both numbers.
type CountError struct {
	ApplicationError
	files int
	names int
}

// NewCountError creates a new count mismatch error
func NewCountError(files, names int) *CountError {
	return &CountError{
		ApplicationError: ApplicationError{
			msg:  "file and name counts do not match",
			kind: CountMismatch,
		},
		files: files,
		names: names,
	}
}

// Error returns the count error message
func (e *CountError) Error() string {
	return fmt.Sprintf("%s: %d files, %d names", e.msg, e.files, e.names)
}

// Files returns the number of files in the set
func (e *CountError) Files() int { return e.files }

// Names returns the number of generated names
func (e *CountError) Names() int { return e.names }

// RenameError reports the positional pair at which a rename pass failed.
// Pairs before the failing index remain renamed.
type RenameError struct {
	ApplicationError
	index int
	src   string
	dest  string
}

// NewRenameError creates a new rename error
func NewRenameError(index int, src, dest string, err error) *RenameError {
	return &RenameError{
		ApplicationError: ApplicationError{
			msg:  "rename failed",
			err:  err,
			kind: RenameFailure,
		},
		index: index,
		src:   src,
		dest:  dest,
	}
}

// Error returns the rename error message
func (e *RenameError) Error() string {
	return fmt.Sprintf("%s at pair %d: %s -> %s: %v", e.msg, e.index, e.src, e.dest, e.err)
}

// Index returns the zero-based pair index at which the pass stopped
func (e *RenameError) Index() int { return e.index }

// Source returns the source path of the failing pair
func (e *RenameError) Source() string { return e.src }

// Destination returns the destination path of the failing pair
func (e *RenameError) Destination() string { return e.dest }

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error with an explicit kind
func NewKind(kind ErrorKind, msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// WrapKind wraps an existing error with additional context and an explicit kind
func WrapKind(err error, kind ErrorKind, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kind,
	}
}

// kinder is implemented by every error type in this package
type kinder interface {
	Kind() ErrorKind
}

// KindOf returns the first known kind in err's chain, or Unknown if there
// is none. Plain-context wrappers carry the Unknown kind and are skipped so
// the wrapped cause's kind shows through.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinder); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsKind checks whether err carries the given kind anywhere in its chain
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if k, ok := err.(kinder); ok && k.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	return IsKind(err, NotFound)
}

// IsMixedExtensions checks if the error is a mixed-extension validation error
func IsMixedExtensions(err error) bool {
	return IsKind(err, MixedExtensions)
}

// IsCountMismatch checks if the error is a count mismatch error
func IsCountMismatch(err error) bool {
	return IsKind(err, CountMismatch)
}

// IsMissingColumn checks if the error is a missing column error
func IsMissingColumn(err error) bool {
	return IsKind(err, MissingColumn)
}
