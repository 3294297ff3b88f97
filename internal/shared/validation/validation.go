// Package validation runs ozzo-validation rules field by field, in the order
// given, and reports the first failure as an apperror.ValidationError.
package validation

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-store-service/internal/shared/apperror"
)

// EmailPattern is the address shape accepted for authors and customers:
// localpart@domain, nothing stricter.
var EmailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// Email is the rule set for a mandatory email.
var Email = []validation.Rule{
	validation.Required,
	validation.Match(EmailPattern).Error("Invalid email format"),
}

// Check is one field with its rules.
type Check struct {
	Field string
	Value interface{}
	Rules []validation.Rule
}

func Field(name string, value interface{}, rules ...validation.Rule) Check {
	return Check{Field: name, Value: value, Rules: rules}
}

// Ordered validates checks in sequence and stops at the first failure.
func Ordered(checks ...Check) error {
	for _, c := range checks {
		if err := validation.Validate(c.Value, c.Rules...); err != nil {
			return toValidationError(c.Field, err)
		}
	}
	return nil
}

func toValidationError(field string, err error) error {
	var verr validation.Error
	if errors.As(err, &verr) {
		if verr.Code() == validation.ErrRequired.Code() || verr.Code() == validation.ErrNilOrNotEmpty.Code() {
			return apperror.Required(field)
		}
		return apperror.Invalid(field, verr.Error())
	}
	return apperror.Invalid(field, err.Error())
}
