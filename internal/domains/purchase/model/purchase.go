package model

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Purchase links one customer to one book on a calendar day (UTC).
type Purchase struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CustomerID   uuid.UUID `json:"customer_id" db:"customer_id"`
	BookID       uuid.UUID `json:"book_id" db:"book_id"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (p *Purchase) IsNew() bool {
	return p.ID == uuid.Nil
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PurchaseBookRequest - POST /purchases
// The date is assigned by the server.
type PurchaseBookRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
	BookID     uuid.UUID `json:"book_id"`
}

type PurchaseResponse struct {
	PurchaseID   uuid.UUID `json:"purchase_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	BookID       uuid.UUID `json:"book_id"`
	PurchaseDate string    `json:"purchase_date"`
}

func (p *Purchase) ToResponse() *PurchaseResponse {
	return &PurchaseResponse{
		PurchaseID:   p.ID,
		CustomerID:   p.CustomerID,
		BookID:       p.BookID,
		PurchaseDate: p.PurchaseDate.UTC().Format(DateLayout),
	}
}

func ToResponses(purchases []Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		out[i] = *purchases[i].ToResponse()
	}
	return out
}
