package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-store-service/internal/domains/customer/model"
	"book-store-service/internal/shared/apperror"
	"book-store-service/pkg/database"
)

const customerColumns = "id, first_name, last_name, email, phone_number, address, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*model.Customer, error) {
	c, err := scanCustomer(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE `+where+` = $1`, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by %s: %w", where, err)
	}
	return c, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return r.findOne(ctx, "id", id)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.findOne(ctx, "email", email)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	q := database.Conn(ctx, r.pool)

	var (
		saved *model.Customer
		err   error
	)
	if c.IsNew() {
		saved, err = scanCustomer(q.QueryRow(ctx, `
			INSERT INTO customers (first_name, last_name, email, phone_number, address)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+customerColumns,
			c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address))
	} else {
		saved, err = scanCustomer(q.QueryRow(ctx, `
			UPDATE customers
			SET first_name = $1, last_name = $2, email = $3, phone_number = $4, address = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING `+customerColumns,
			c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address, c.ID))
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Customer", c.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperror.AlreadyExists("Customer", "email", c.Email)
		}
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	return saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
