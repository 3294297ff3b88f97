package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"book-store-service/internal/domains/purchase/model"
	"book-store-service/internal/infrastructure/memstore"
)

type memoryRepository struct {
	rows *memstore.Table[uuid.UUID, model.Purchase]
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{rows: memstore.NewTable[uuid.UUID, model.Purchase](store)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.rows.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.Purchase, error) {
	return r.rows.Values(ctx), nil
}

func (r *memoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.Has(ctx, id), nil
}

func (r *memoryRepository) Save(ctx context.Context, p *model.Purchase) (*model.Purchase, error) {
	if !p.IsNew() {
		return nil, fmt.Errorf("purchase %s is already recorded", p.ID)
	}
	row := *p
	row.ID = uuid.New()
	row.CreatedAt = time.Now().UTC()
	r.rows.Put(ctx, row.ID, row)
	return &row, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.rows.Delete(ctx, id)
	return nil
}
