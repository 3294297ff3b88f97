package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-store-service/internal/shared/apperror"
)

func nineteenEightyFour() CreateBookRequest {
	return CreateBookRequest{
		Title: "1984",
		Genre: "Dystopian",
		Price: decimal.RequireFromString("15.99"),
		Stock: 10,
	}
}

func TestCreateBookRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateBookRequest)
		wantErr string
	}{
		{"valid", func(*CreateBookRequest) {}, ""},
		{"zero stock allowed", func(r *CreateBookRequest) { r.Stock = 0 }, ""},
		{"missing title", func(r *CreateBookRequest) { r.Title = "" }, "title is required"},
		{"missing genre", func(r *CreateBookRequest) { r.Genre = "" }, "genre is required"},
		{"missing price", func(r *CreateBookRequest) { r.Price = decimal.Zero }, "price is required"},
		{"negative price", func(r *CreateBookRequest) { r.Price = decimal.NewFromInt(-1) }, "price - price should be greater than 0"},
		{"negative stock", func(r *CreateBookRequest) { r.Stock = -1 }, "stock - stock should be greater than 0"},
		{"title checked before price", func(r *CreateBookRequest) { r.Title = ""; r.Price = decimal.NewFromInt(-5) }, "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := nineteenEightyFour()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateBookRequest_Validate(t *testing.T) {
	zero := decimal.Zero
	negative := decimal.NewFromInt(-3)
	price := decimal.RequireFromString("9.50")
	badStock := -2
	title := ""

	tests := []struct {
		name    string
		req     UpdateBookRequest
		wantErr string
	}{
		{"empty update", UpdateBookRequest{}, ""},
		{"valid price", UpdateBookRequest{Price: &price}, ""},
		{"present empty title is not checked", UpdateBookRequest{Title: &title}, ""},
		{"zero price", UpdateBookRequest{Price: &zero}, "price - price should be greater than 0"},
		{"negative price", UpdateBookRequest{Price: &negative}, "price - price should be greater than 0"},
		{"negative stock", UpdateBookRequest{Stock: &badStock}, "stock - stock should be greater than 0"},
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

func TestUpdateBookRequest_ApplyTo(t *testing.T) {
	req := nineteenEightyFour()
	book := req.ToEntity()
	stock := 3

	update := UpdateBookRequest{Stock: &stock}
	update.ApplyTo(book)

	assert.Equal(t, "1984", book.Title)
	assert.True(t, decimal.RequireFromString("15.99").Equal(book.Price))
	assert.Equal(t, 3, book.Stock)
}

func TestBook_ToResponseNeverNilAuthors(t *testing.T) {
	resp := (&Book{Title: "Animal Farm"}).ToResponse()
	assert.NotNil(t, resp.Authors)
	assert.Empty(t, resp.Authors)
}
