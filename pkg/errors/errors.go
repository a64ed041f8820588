package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration or prop validation issues.
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

// ContractError reports a component used in a way its render contract forbids,
// such as an as-child target receiving zero or several children.
type ContractError struct {
	Component string
	Message   string
}

// NewContractError constructs a ContractError for the named component.
func NewContractError(component, message string) error {
	return &ContractError{Component: component, Message: message}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("contract violation in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("contract violation: %s", e.Message)
}

// SourceError indicates a theme source could not be fetched or read.
type SourceError struct {
	Source  string
	Message string
	Err     error
}

// NewSourceError constructs a SourceError for the given source name.
func NewSourceError(source string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SourceError{Source: source, Message: message, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("theme source error [%s]: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("theme source error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
