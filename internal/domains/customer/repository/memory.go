package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-store-service/internal/domains/customer/model"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type memoryRepository struct {
	rows *memstore.Table[uuid.UUID, model.Customer]
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{rows: memstore.NewTable[uuid.UUID, model.Customer](store)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.rows.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	return r.rows.Values(ctx), nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	c, ok := r.rows.Find(ctx, func(c model.Customer) bool { return c.Email == email })
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.Has(ctx, id), nil
}

func (r *memoryRepository) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	row := *c
	now := time.Now().UTC()
	if row.IsNew() {
		row.ID = uuid.New()
		row.CreatedAt = now
	} else {
		existing, ok := r.rows.Get(ctx, row.ID)
		if !ok {
			return nil, apperror.NotFound("Customer", row.ID)
		}
		row.CreatedAt = existing.CreatedAt
	}
	row.UpdatedAt = now

	if !r.rows.PutUnique(ctx, row.ID, row, func(other model.Customer) bool { return other.Email == row.Email }) {
		return nil, apperror.AlreadyExists("Customer", "email", row.Email)
	}
	return &row, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.rows.Delete(ctx, id)
	return nil
}
