package model

import (
	"fmt"
	"strings"
)

// ParseError reports a field value that matches none of the accepted formats.
type ParseError struct {
	// Row is the 1-based data row number, or 0 when the value was parsed
	// outside of a dataset.
	Row int

	// Field is the column the value came from.
	Field string

	// Value is the offending raw text.
	Value string

	// Err describes why the value was rejected.
	Err error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: cannot parse %s %q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns missing from the dataset header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required column(s): %s", strings.Join(e.Missing, ", "))
}
