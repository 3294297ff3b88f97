package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-store-service/internal/domains/book/model"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type memoryRepository struct {
	rows *memstore.Table[uuid.UUID, model.Book]
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{rows: memstore.NewTable[uuid.UUID, model.Book](store)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := r.rows.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.rows.Values(ctx), nil
}

func (r *memoryRepository) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Book, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.rows.Filter(ctx, func(b model.Book) bool {
		_, ok := wanted[b.ID]
		return ok
	}), nil
}

func (r *memoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.Has(ctx, id), nil
}

func (r *memoryRepository) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	row := *b
	row.Authors = nil
	now := time.Now().UTC()

	if row.IsNew() {
		row.ID = uuid.New()
		row.CreatedAt = now
	} else {
		existing, ok := r.rows.Get(ctx, row.ID)
		if !ok {
			return nil, apperror.NotFound("Book", row.ID)
		}
		row.CreatedAt = existing.CreatedAt
	}
	row.UpdatedAt = now

	r.rows.Put(ctx, row.ID, row)
	return &row, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.rows.Delete(ctx, id)
	return nil
}
