package export

import "fmt"

// GenerateError represents a failure producing the paginated document. The
// export is all-or-nothing: callers get either a complete PDF or this error,
// never a partial document.
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
