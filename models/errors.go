package models

import "fmt"

// ValidationError marks input the store refuses to apply: an empty name,
// a missing suspension start, an end date before its start.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an operation that referenced a student id missing
// from the roster.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewStudentNotFound builds a NotFoundError for a student id.
func NewStudentNotFound(id int64) *NotFoundError {
	return &NotFoundError{Resource: "student", ID: id}
}
