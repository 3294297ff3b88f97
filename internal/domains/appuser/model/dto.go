package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	v "book-store-service/internal/shared/validation"
)

var usernameLength = validation.RuneLength(0, MaxUsernameLength).
	Error(fmt.Sprintf("username must be at most %d characters", MaxUsernameLength))

// bcrypt refuses longer input; Length counts bytes.
var passwordLength = validation.Length(0, MaxPasswordBytes).
	Error(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))

// CreateAppUserRequest - POST /users
type CreateAppUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Roles    string `json:"roles"`
}

func (r CreateAppUserRequest) Validate() error {
	return v.Ordered(
		v.Field("username", r.Username, validation.Required, usernameLength),
		v.Field("password", r.Password, validation.Required, passwordLength),
		v.Field("roles", r.Roles, validation.Required),
	)
}

// UpdateAppUserRequest - PUT /users/:id
// A present password is re-hashed.
type UpdateAppUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Roles    *string `json:"roles,omitempty"`
}

func (r UpdateAppUserRequest) Validate() error {
	return v.Ordered(
		v.Field("username", r.Username, validation.NilOrNotEmpty, usernameLength),
		v.Field("password", r.Password, validation.NilOrNotEmpty, passwordLength),
		v.Field("roles", r.Roles, validation.NilOrNotEmpty),
	)
}

type AppUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Roles    string    `json:"roles"`
}

func (u *AppUser) ToResponse() *AppUserResponse {
	return &AppUserResponse{ID: u.ID, Username: u.Username, Roles: u.Roles}
}

func ToResponses(users []AppUser) []AppUserResponse {
	out := make([]AppUserResponse, len(users))
	for i := range users {
		out[i] = *users[i].ToResponse()
	}
	return out
}
