package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orwell() CreateAuthorRequest {
	return CreateAuthorRequest{
		FirstName:   "George",
		LastName:    "Orwell",
		Email:       "george.orwell@email.com",
		Nationality: "British",
	}
}

func TestCreateAuthorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateAuthorRequest)
		wantErr string
	}{
		{"valid", func(*CreateAuthorRequest) {}, ""},
		{"missing first name", func(r *CreateAuthorRequest) { r.FirstName = "" }, "firstName is required"},
		{"missing last name", func(r *CreateAuthorRequest) { r.LastName = "" }, "lastName is required"},
		{"missing email", func(r *CreateAuthorRequest) { r.Email = "" }, "email is required"},
		{"malformed email", func(r *CreateAuthorRequest) { r.Email = "orwell" }, "email - Invalid email format"},
		{"missing nationality", func(r *CreateAuthorRequest) { r.Nationality = "" }, "nationality is required"},
		{"first violation wins", func(r *CreateAuthorRequest) { r.LastName = ""; r.Email = "bad" }, "lastName is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := orwell()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAuthorRequest_ApplyTo(t *testing.T) {
	a := orwell()
	author := a.ToEntity()
	nationality := "English"

	req := UpdateAuthorRequest{Nationality: &nationality}
	assert.NoError(t, req.Validate())
	req.ApplyTo(author)

	assert.Equal(t, "George", author.FirstName)
	assert.Equal(t, "Orwell", author.LastName)
	assert.Equal(t, "george.orwell@email.com", author.Email)
	assert.Equal(t, "English", author.Nationality)

	bad := "nope"
	assert.EqualError(t, UpdateAuthorRequest{Email: &bad}.Validate(), "email - Invalid email format")
}

func TestAuthor_ToResponseHasEmptyBooks(t *testing.T) {
	a := orwell()
	resp := a.ToEntity().ToResponse()
	assert.NotNil(t, resp.Books)
	assert.Empty(t, resp.Books)
}
