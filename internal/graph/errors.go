package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the graph file does not exist.
	ErrNotFound = errors.New("graph file not found")

	// ErrInvalid indicates the graph document failed decoding or schema validation.
	ErrInvalid = errors.New("invalid graph document")
)

// SchemaError describes why a graph document was rejected.
type SchemaError struct {
	File  string
	Field string // empty when the failure is not tied to one field
	Err   error
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	msg := ErrInvalid.Error() + " " + e.File
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SchemaError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}
	return []error{ErrInvalid, e.Err}
}
