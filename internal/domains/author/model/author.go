package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Author is identified for dedup purposes by Email, unique across authors.
type Author struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	Nationality string    `json:"nationality" db:"nationality"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Books is a read view of the book_authors association, filled by the service.
	Books []BookRef `json:"books,omitempty" db:"-"`
}

// BookRef is the slice of a book shown on an author.
type BookRef struct {
	ID    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Genre string          `json:"genre"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

func (a *Author) IsNew() bool {
	return a.ID == uuid.Nil
}
