package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/author/model"
)

// RepositoryInterface is the author persistence contract.
// Lookups return (nil, nil) when nothing matches.
type RepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	FindAll(ctx context.Context) ([]model.Author, error)
	// FindAllByID skips ids that do not exist.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Author, error)
	FindByEmail(ctx context.Context, email string) (*model.Author, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// Save inserts when a.ID is Nil and updates otherwise.
	// A taken email fails with apperror.AlreadyExistsError.
	Save(ctx context.Context, a *model.Author) (*model.Author, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
