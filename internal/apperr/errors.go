package apperr

import "maps"

type ValidationError struct {
	Message string
	Fields  map[string]string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewFieldValidation reports per-field problems, keyed by field name.
func NewFieldValidation(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: msg, Fields: maps.Clone(fields)}
}

// NotFoundError signals that the requested resource, or every item a
// listing could show, does not exist.
type NotFoundError struct {
	Resource string
	Key      any
}

func (e *NotFoundError) Error() string {
	if e.Key == nil {
		return e.Resource + " not found"
	}
	return e.Resource + " not found: " + toString(e.Key)
}

func NewNotFound(resource string, key any) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}
