package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	v "book-store-service/internal/shared/validation"
)

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Nationality string `json:"nationality"`
}

// Validate checks fields in declaration order and reports the first violation.
func (r CreateAuthorRequest) Validate() error {
	return v.Ordered(
		v.Field("firstName", r.FirstName, validation.Required),
		v.Field("lastName", r.LastName, validation.Required),
		v.Field("email", r.Email, v.Email...),
		v.Field("nationality", r.Nationality, validation.Required),
	)
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Nationality: r.Nationality,
	}
}

// CreateAuthorWithBooksRequest - POST /authors/with-books
// Unknown book ids are skipped, not rejected.
type CreateAuthorWithBooksRequest struct {
	Author  CreateAuthorRequest `json:"author"`
	BookIDs []uuid.UUID         `json:"book_ids"`
}

// UpdateAuthorRequest - PUT /authors/:id
// Nil fields are left untouched.
type UpdateAuthorRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return v.Ordered(
		v.Field("email", r.Email, validation.Match(v.EmailPattern).Error("Invalid email format")),
	)
}

func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	if r.FirstName != nil {
		a.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		a.LastName = *r.LastName
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
	if r.Nationality != nil {
		a.Nationality = *r.Nationality
	}
}

type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Nationality string    `json:"nationality"`
	Books       []BookRef `json:"books"`
}

func (a *Author) ToResponse() *AuthorResponse {
	books := a.Books
	if books == nil {
		books = []BookRef{}
	}
	return &AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Nationality: a.Nationality,
		Books:       books,
	}
}

func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i := range authors {
		out[i] = *authors[i].ToResponse()
	}
	return out
}
