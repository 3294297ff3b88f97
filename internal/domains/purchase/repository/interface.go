package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/purchase/model"
)

type RepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	FindAll(ctx context.Context) ([]model.Purchase, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, p *model.Purchase) (*model.Purchase, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
