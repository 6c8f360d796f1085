package reconcile

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrConfiguration indicates a malformed ruleset. It is always fatal.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrNotFound indicates a referenced table or column does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousMatch indicates several candidates and no cascade winner.
	ErrAmbiguousMatch = errors.New("ambiguous match")

	// ErrParse indicates metadata that could not be interpreted.
	ErrParse = errors.New("parse error")
)

// ConfigurationError reports a problem in the rewrite rules or field table.
type ConfigurationError struct {
	Section string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is implements errors.Is support
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NotFoundError reports a missing table or column.
type NotFoundError struct {
	Resource string
	Name     string
	Err      error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s not found: %v", e.Resource, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Unwrap implements errors.Unwrap
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// AmbiguousMatchError describes a base record whose candidates could not be ranked.
// It is recorded on the RecordResult and never returned by the engine.
type AmbiguousMatchError struct {
	RowIndex   int
	Candidates []int
}

// Error implements the error interface
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("unresolved: ambiguous match for row %d: candidate rows %v", e.RowIndex, e.Candidates)
}

// Is implements errors.Is support
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}

// ParseError reports metadata that is not in the expected format.
type ParseError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}
