package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	late := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(late))
}

func TestPurchase_ToResponse(t *testing.T) {
	p := &Purchase{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		BookID:       uuid.New(),
		PurchaseDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	resp := p.ToResponse()
	assert.Equal(t, p.ID, resp.PurchaseID)
	assert.Equal(t, "2024-01-02", resp.PurchaseDate)
}
