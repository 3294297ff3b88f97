package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-store-service/internal/domains/purchase/model"
	"book-store-service/pkg/database"
)

const purchaseColumns = "id, customer_id, book_id, purchase_date, created_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanPurchase(row pgx.Row) (*model.Purchase, error) {
	var p model.Purchase
	if err := row.Scan(&p.ID, &p.CustomerID, &p.BookID, &p.PurchaseDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, err := scanPurchase(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Purchase, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := []model.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, *p)
	}
	return purchases, rows.Err()
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM purchases WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase existence: %w", err)
	}
	return exists, nil
}

// Save only inserts; purchases are immutable once recorded.
func (r *postgresRepository) Save(ctx context.Context, p *model.Purchase) (*model.Purchase, error) {
	if !p.IsNew() {
		return nil, fmt.Errorf("purchase %s is already recorded", p.ID)
	}
	saved, err := scanPurchase(database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO purchases (customer_id, book_id, purchase_date)
		VALUES ($1, $2, $3)
		RETURNING `+purchaseColumns,
		p.CustomerID, p.BookID, p.PurchaseDate))
	if err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}
	return saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	return nil
}
