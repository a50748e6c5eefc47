// Package ingestion loads feature records from external files: JSON records
// validated against a schema, and job postings from CSV with flexible source
// column naming.
package ingestion

import "fmt"

// LoadError represents a file I/O or decode failure.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// SchemaValidationError aggregates the schema violations found in one record.
type SchemaValidationError struct {
	Errors []FieldError
}

func (e *SchemaValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	return fmt.Sprintf("schema validation failed: %s: %s (and %d more)",
		e.Errors[0].Field, e.Errors[0].Message, len(e.Errors)-1)
}
