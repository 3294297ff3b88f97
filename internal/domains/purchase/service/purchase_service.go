package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "book-store-service/internal/domains/book/model"
	customermodel "book-store-service/internal/domains/customer/model"
	"book-store-service/internal/domains/purchase/model"
	"book-store-service/internal/domains/purchase/repository"
	"book-store-service/internal/shared/apperror"
)

type ServiceInterface interface {
	// PurchaseBook records a purchase dated today (UTC). Stock is not changed.
	PurchaseBook(ctx context.Context, req model.PurchaseBookRequest) (*model.Purchase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	GetAll(ctx context.Context) ([]model.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customermodel.Customer, error)
}

type BookLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*bookmodel.Book, error)
}

type purchaseService struct {
	repo      repository.RepositoryInterface
	customers CustomerLookup
	books     BookLookup
	now       func() time.Time
}

// NewPurchaseService uses now as the clock; nil means time.Now.
func NewPurchaseService(
	repo repository.RepositoryInterface,
	customers CustomerLookup,
	books BookLookup,
	now func() time.Time,
) ServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &purchaseService{repo: repo, customers: customers, books: books, now: now}
}

func (s *purchaseService) PurchaseBook(ctx context.Context, req model.PurchaseBookRequest) (*model.Purchase, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		log.Warn().Str("customer_id", req.CustomerID.String()).Msg("purchase for unknown customer")
		return nil, apperror.NotFound("Customer", req.CustomerID)
	}

	book, err := s.books.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up book: %w", err)
	}
	if book == nil {
		log.Warn().Str("book_id", req.BookID.String()).Msg("purchase of unknown book")
		return nil, apperror.NotFound("Book", req.BookID)
	}

	saved, err := s.repo.Save(ctx, &model.Purchase{
		CustomerID:   customer.ID,
		BookID:       book.ID,
		PurchaseDate: model.DateOf(s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	log.Info().
		Str("purchase_id", saved.ID.String()).
		Str("customer_id", saved.CustomerID.String()).
		Str("book_id", saved.BookID.String()).
		Msg("purchase recorded")
	return saved, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Purchase", id)
	}
	return p, nil
}

func (s *purchaseService) GetAll(ctx context.Context) ([]model.Purchase, error) {
	return s.repo.FindAll(ctx)
}

func (s *purchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Purchase", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
