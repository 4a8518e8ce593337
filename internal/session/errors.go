package session

import "fmt"

// CommandError represents a rejected editing command.
type CommandError struct {
	Message string
	Cause   error
}

func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("session error: %s", e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports an update or remove aimed at an id the document does
// not contain.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry with id %s", e.ID)
}
