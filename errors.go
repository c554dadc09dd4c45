package xbrl

import (
	"errors"
	"fmt"
)

// Sentinel causes for fatal parse failures.
var (
	// ErrNotWellFormed indicates the source is not well-formed XML.
	ErrNotWellFormed = errors.New("document is not well-formed XML")
	// ErrNoRootElement indicates the document has no root element.
	ErrNoRootElement = errors.New("document has no root element")
)

// ParseError is the fatal error kind. It aborts a parse call entirely,
// unlike validation errors, which are collected on the Instance.
type ParseError struct {
	// Source identifies the document that failed (file path or stream name).
	Source string
	// Err is the underlying cause.
	Err error
}

// NewParseError wraps err as a fatal parse error for source.
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("xbrl: parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is (or wraps) a fatal ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
