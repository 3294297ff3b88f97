package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Book struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	Genre     string          `json:"genre" db:"genre"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Stock     int             `json:"stock" db:"stock"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`

	// Authors is derived from book_authors on read.
	Authors []AuthorRef `json:"authors,omitempty" db:"-"`
}

// AuthorRef is the slice of an author shown on a book.
type AuthorRef struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Nationality string    `json:"nationality"`
}

func (b *Book) IsNew() bool {
	return b.ID == uuid.Nil
}
