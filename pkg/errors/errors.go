package errors

import (
	"fmt"
)

// ConstructionError indicates a palette could not be built: an invalid
// option value, an empty id, or an empty-but-present host allow-list.
type ConstructionError struct {
	Palette string
	Field   string
	Message string
	Err     error
}

// NewConstructionError constructs a ConstructionError for the given palette.
func NewConstructionError(palette, field, message string, err error) error {
	return &ConstructionError{Palette: palette, Field: field, Message: message, Err: err}
}

func (e *ConstructionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("palette %s: construction error: %s: %s", e.Palette, e.Field, e.Message)
	}
	return fmt.Sprintf("palette %s: construction error: %s", e.Palette, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConstructionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PopulationError indicates an entry source failed while producing the
// command list. The palette keeps its previous commands when this occurs.
type PopulationError struct {
	Palette string
	Trigger string
	Err     error
}

// NewPopulationError constructs a PopulationError.
func NewPopulationError(palette, trigger string, err error) error {
	return &PopulationError{Palette: palette, Trigger: trigger, Err: err}
}

func (e *PopulationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Trigger != "" {
		return fmt.Sprintf("palette %s: population error on %s: %v", e.Palette, e.Trigger, e.Err)
	}
	return fmt.Sprintf("palette %s: population error: %v", e.Palette, e.Err)
}

// Unwrap exposes the root error.
func (e *PopulationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExecutionError represents a failure while running an entry's action.
// The palette stays usable after reporting it.
type ExecutionError struct {
	Palette string
	Entry   string
	Err     error
}

// NewExecutionError constructs an ExecutionError for the given entry.
func NewExecutionError(palette, entry string, err error) error {
	return &ExecutionError{Palette: palette, Entry: entry, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Entry != "" {
		return fmt.Sprintf("palette %s: execution error on entry %s: %v", e.Palette, e.Entry, e.Err)
	}
	return fmt.Sprintf("palette %s: execution error: %v", e.Palette, e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BindingError indicates a custom key-binding handler failed.
type BindingError struct {
	Palette string
	Key     string
	Err     error
}

// NewBindingError constructs a BindingError for the given key.
func NewBindingError(palette, key string, err error) error {
	return &BindingError{Palette: palette, Key: key, Err: err}
}

func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("palette %s: binding error on %q: %v", e.Palette, e.Key, e.Err)
}

// Unwrap exposes the underlying error.
func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a configuration parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
