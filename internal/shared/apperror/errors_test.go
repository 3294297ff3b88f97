package apperror_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"book-store-service/internal/shared/apperror"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing field", apperror.Required("title"), "title is required"},
		{"invalid field", apperror.Invalid("email", "Invalid email format"), "email - Invalid email format"},
		{"duplicate", apperror.AlreadyExists("Author", "email", "a@b.com"), "Author already exists with email: a@b.com"},
		{"not found", apperror.NotFound("Book", 42), "Book not found with id 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("purchase: %w", apperror.NotFound("Customer", "c-1"))

	assert.True(t, apperror.IsNotFound(wrapped))
	assert.False(t, apperror.IsValidation(wrapped))
	assert.False(t, apperror.IsAlreadyExists(wrapped))

	entity, ok := apperror.NotFoundEntity(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Customer", entity)

	assert.True(t, apperror.IsValidation(fmt.Errorf("x: %w", apperror.Required("title"))))
	assert.True(t, apperror.IsAlreadyExists(fmt.Errorf("x: %w", apperror.AlreadyExists("AppUser", "username", "admin"))))
}
