package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	authormodel "book-store-service/internal/domains/author/model"
	v "book-store-service/internal/shared/validation"
)

var errPriceNotPositive = validation.NewError("validation_price_not_positive", "price should be greater than 0")

// requiredPrice treats a zero price as missing.
var requiredPrice = validation.By(func(value interface{}) error {
	if p, ok := value.(decimal.Decimal); ok && p.IsZero() {
		return validation.ErrRequired
	}
	return nil
})

var positivePrice = validation.By(func(value interface{}) error {
	switch p := value.(type) {
	case decimal.Decimal:
		if !p.IsPositive() {
			return errPriceNotPositive
		}
	case *decimal.Decimal:
		if p != nil && !p.IsPositive() {
			return errPriceNotPositive
		}
	default:
		return errors.New("must be a decimal")
	}
	return nil
})

var nonNegativeStock = validation.Min(0).Error("stock should be greater than 0")

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title string          `json:"title"`
	Genre string          `json:"genre"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

func (r CreateBookRequest) Validate() error {
	return v.Ordered(
		v.Field("title", r.Title, validation.Required),
		v.Field("genre", r.Genre, validation.Required),
		v.Field("price", r.Price, requiredPrice, positivePrice),
		v.Field("stock", r.Stock, nonNegativeStock),
	)
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title: r.Title,
		Genre: r.Genre,
		Price: r.Price,
		Stock: r.Stock,
	}
}

// UpdateBookRequest - PUT /books/:id
// Only present fields are validated and applied.
type UpdateBookRequest struct {
	Title *string          `json:"title,omitempty"`
	Genre *string          `json:"genre,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Stock *int             `json:"stock,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return v.Ordered(
		v.Field("price", r.Price, positivePrice),
		v.Field("stock", r.Stock, nonNegativeStock),
	)
}

func (r *UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Genre != nil {
		b.Genre = *r.Genre
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.Stock != nil {
		b.Stock = *r.Stock
	}
}

// CreateBookWithAuthorRequest - POST /books/with-author
// The author is reused when one with the same email exists.
type CreateBookWithAuthorRequest struct {
	Book   CreateBookRequest               `json:"book"`
	Author authormodel.CreateAuthorRequest `json:"author"`
}

type BookResponse struct {
	ID      uuid.UUID       `json:"id"`
	Title   string          `json:"title"`
	Genre   string          `json:"genre"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
	Authors []AuthorRef     `json:"authors"`
}

func (b *Book) ToResponse() *BookResponse {
	authors := b.Authors
	if authors == nil {
		authors = []AuthorRef{}
	}
	return &BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Genre:   b.Genre,
		Price:   b.Price,
		Stock:   b.Stock,
		Authors: authors,
	}
}

func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i := range books {
		out[i] = *books[i].ToResponse()
	}
	return out
}
