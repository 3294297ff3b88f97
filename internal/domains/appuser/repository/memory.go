package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-store-service/internal/domains/appuser/model"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type memoryRepository struct {
	rows *memstore.Table[uuid.UUID, model.AppUser]
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{rows: memstore.NewTable[uuid.UUID, model.AppUser](store)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AppUser, error) {
	u, ok := r.rows.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.AppUser, error) {
	return r.rows.Values(ctx), nil
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (*model.AppUser, error) {
	u, ok := r.rows.Find(ctx, func(u model.AppUser) bool { return u.Username == username })
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.Has(ctx, id), nil
}

func (r *memoryRepository) Save(ctx context.Context, u *model.AppUser) (*model.AppUser, error) {
	row := *u
	now := time.Now().UTC()
	if row.IsNew() {
		row.ID = uuid.New()
		row.CreatedAt = now
	} else {
		existing, ok := r.rows.Get(ctx, row.ID)
		if !ok {
			return nil, apperror.NotFound("AppUser", row.ID)
		}
		row.CreatedAt = existing.CreatedAt
	}
	row.UpdatedAt = now

	if !r.rows.PutUnique(ctx, row.ID, row, func(other model.AppUser) bool { return other.Username == row.Username }) {
		return nil, apperror.AlreadyExists("AppUser", "username", row.Username)
	}
	return &row, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.rows.Delete(ctx, id)
	return nil
}
