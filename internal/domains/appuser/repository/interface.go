package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/appuser/model"
)

type RepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.AppUser, error)
	FindAll(ctx context.Context) ([]model.AppUser, error)
	FindByUsername(ctx context.Context, username string) (*model.AppUser, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, u *model.AppUser) (*model.AppUser, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
