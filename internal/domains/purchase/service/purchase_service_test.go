package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "book-store-service/internal/domains/book/model"
	bookrepo "book-store-service/internal/domains/book/repository"
	customermodel "book-store-service/internal/domains/customer/model"
	customerrepo "book-store-service/internal/domains/customer/repository"
	"book-store-service/internal/domains/purchase/model"
	"book-store-service/internal/domains/purchase/repository"
	"book-store-service/internal/domains/purchase/service"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type fixture struct {
	svc      service.ServiceInterface
	customer *customermodel.Customer
	book     *bookmodel.Book
	books    bookrepo.RepositoryInterface
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	customers := customerrepo.NewMemoryRepository(store)
	books := bookrepo.NewMemoryRepository(store)

	c, err := customers.Save(ctx, &customermodel.Customer{
		FirstName: "Jane", LastName: "Doe", Email: "jane@doe.org", PhoneNumber: "555", Address: "x",
	})
	require.NoError(t, err)
	b, err := books.Save(ctx, &bookmodel.Book{
		Title: "1984", Genre: "Dystopian", Price: decimal.NewFromInt(12), Stock: 3,
	})
	require.NoError(t, err)

	return &fixture{
		svc:      service.NewPurchaseService(repository.NewMemoryRepository(store), customers, books, func() time.Time { return now }),
		customer: c,
		book:     b,
		books:    books,
	}
}

func TestPurchaseService_PurchaseBook(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 17, 15, 4, 5, 0, time.UTC)
	f := newFixture(t, now)

	p, err := f.svc.PurchaseBook(ctx, model.PurchaseBookRequest{CustomerID: f.customer.ID, BookID: f.book.ID})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "2024-05-17", p.ToResponse().PurchaseDate)
	assert.Equal(t, f.customer.ID, p.CustomerID)
	assert.Equal(t, f.book.ID, p.BookID)

	// stock is left alone
	b, err := f.books.FindByID(ctx, f.book.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Stock)

	fetched, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
}

func TestPurchaseService_PurchaseBookNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	tests := []struct {
		name       string
		req        model.PurchaseBookRequest
		wantEntity string
	}{
		{"unknown customer", model.PurchaseBookRequest{CustomerID: uuid.New(), BookID: f.book.ID}, "Customer"},
		{"unknown book", model.PurchaseBookRequest{CustomerID: f.customer.ID, BookID: uuid.New()}, "Book"},
		{"customer checked first", model.PurchaseBookRequest{CustomerID: uuid.New(), BookID: uuid.New()}, "Customer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PurchaseBook(ctx, tt.req)
			entity, ok := apperror.NotFoundEntity(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantEntity, entity)
		})
	}

	all, err := f.svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPurchaseService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	p, err := f.svc.PurchaseBook(ctx, model.PurchaseBookRequest{CustomerID: f.customer.ID, BookID: f.book.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, p.ID))
	assert.True(t, apperror.IsNotFound(f.svc.Delete(ctx, p.ID)))
}
