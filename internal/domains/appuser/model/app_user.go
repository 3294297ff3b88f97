package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxUsernameLength = 20

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

type AppUser struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Roles        string    `json:"roles" db:"roles"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (u *AppUser) IsNew() bool {
	return u.ID == uuid.Nil
}

// NormalizeRoles upper-cases a comma separated role list and drops blanks,
// so " admin, user ,," becomes "ADMIN,USER".
func NormalizeRoles(roles string) string {
	parts := strings.Split(roles, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
