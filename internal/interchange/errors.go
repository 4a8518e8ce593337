package interchange

import (
	"fmt"
	"strings"
)

// ParseError represents input that is not JSON at all.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents parseable JSON whose shape does not match the
// export envelope schema. It carries field paths so callers can point users at
// what to fix.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single schema violation at one field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("import validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents a failure loading the embedded schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load cv schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load cv schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
