package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAppUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAppUserRequest
		wantErr string
	}{
		{"valid", CreateAppUserRequest{Username: "admin", Password: "pw", Roles: "admin"}, ""},
		{"missing username", CreateAppUserRequest{Password: "pw", Roles: "admin"}, "username is required"},
		{"long username", CreateAppUserRequest{Username: strings.Repeat("a", 21), Password: "pw", Roles: "admin"}, "username - username must be at most 20 characters"},
		{"missing password", CreateAppUserRequest{Username: "admin", Roles: "admin"}, "password is required"},
		{"password at bcrypt limit", CreateAppUserRequest{Username: "admin", Password: strings.Repeat("x", 72), Roles: "admin"}, ""},
		{"password over bcrypt limit", CreateAppUserRequest{Username: "admin", Password: strings.Repeat("x", 73), Roles: "admin"}, "password - password must be at most 72 bytes"},
		{"multibyte password over limit", CreateAppUserRequest{Username: "admin", Password: strings.Repeat("é", 37), Roles: "admin"}, "password - password must be at most 72 bytes"},
		{"missing roles", CreateAppUserRequest{Username: "admin", Password: "pw"}, "roles is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAppUserRequest_ValidateRejectsBlankPresentFields(t *testing.T) {
	empty := ""
	assert.NoError(t, UpdateAppUserRequest{}.Validate())
	assert.EqualError(t, UpdateAppUserRequest{Password: &empty}.Validate(), "password is required")

	long := strings.Repeat("x", 73)
	assert.EqualError(t, UpdateAppUserRequest{Password: &long}.Validate(), "password - password must be at most 72 bytes")
}

func TestNormalizeRoles(t *testing.T) {
	assert.Equal(t, "ADMIN,USER", NormalizeRoles(" admin, user ,,"))
	assert.Equal(t, "", NormalizeRoles(" , "))
}

func TestAppUser_ToResponseHidesHash(t *testing.T) {
	u := &AppUser{Username: "admin", PasswordHash: "$2a$secret", Roles: "ADMIN"}
	resp := u.ToResponse()
	assert.Equal(t, "admin", resp.Username)
	assert.NotContains(t, []string{resp.Username, resp.Roles}, u.PasswordHash)
}
