package model

import "fmt"

// ValidationError reports a malformed or illegal façade call — the same
// shape as the teacher pack's madstone-tech-loko entities.ValidationError,
// trimmed to the fields this model actually populates.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

func newValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Message: message}
}
