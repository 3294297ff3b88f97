package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/customer/model"
)

type RepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, c *model.Customer) (*model.Customer, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
