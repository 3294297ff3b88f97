package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-store-service/internal/domains/author/model"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type memoryRepository struct {
	rows *memstore.Table[uuid.UUID, model.Author]
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{rows: memstore.NewTable[uuid.UUID, model.Author](store)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, ok := r.rows.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	return r.rows.Values(ctx), nil
}

func (r *memoryRepository) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.rows.Filter(ctx, func(a model.Author) bool {
		_, ok := wanted[a.ID]
		return ok
	}), nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	a, ok := r.rows.Find(ctx, func(a model.Author) bool { return a.Email == email })
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.Has(ctx, id), nil
}

func (r *memoryRepository) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	row := *a
	row.Books = nil
	now := time.Now().UTC()

	if row.IsNew() {
		row.ID = uuid.New()
		row.CreatedAt = now
	} else {
		existing, ok := r.rows.Get(ctx, row.ID)
		if !ok {
			return nil, apperror.NotFound("Author", row.ID)
		}
		row.CreatedAt = existing.CreatedAt
	}
	row.UpdatedAt = now

	if !r.rows.PutUnique(ctx, row.ID, row, func(other model.Author) bool { return other.Email == row.Email }) {
		return nil, apperror.AlreadyExists("Author", "email", row.Email)
	}
	return &row, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.rows.Delete(ctx, id)
	return nil
}
