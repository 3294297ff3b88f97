// Package apperror holds the error kinds raised by the domain services.
// The HTTP layer maps them: NotFound→404, Validation→400, AlreadyExists→409.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports the first invalid field of a request.
// An empty Reason means the field is missing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return e.Field + " is required"
	}
	return e.Field + " - " + e.Reason
}

// AlreadyExistsError reports a unique attribute already taken by another record.
type AlreadyExistsError struct {
	Entity    string
	Attribute string
	Value     string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with %s: %s", e.Entity, e.Attribute, e.Value)
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %s", e.Entity, e.ID)
}

func Required(field string) error {
	return &ValidationError{Field: field}
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func AlreadyExists(entity, attribute, value string) error {
	return &AlreadyExistsError{Entity: entity, Attribute: attribute, Value: value}
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// NotFoundEntity returns the entity named by a NotFoundError in err's chain.
func NotFoundEntity(err error) (string, bool) {
	var target *NotFoundError
	if errors.As(err, &target) {
		return target.Entity, true
	}
	return "", false
}
