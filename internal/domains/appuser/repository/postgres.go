package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-store-service/internal/domains/appuser/model"
	"book-store-service/internal/shared/apperror"
	"book-store-service/pkg/database"
)

const userColumns = "id, username, password_hash, roles, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanUser(row pgx.Row) (*model.AppUser, error) {
	var u model.AppUser
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Roles, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AppUser, error) {
	u, err := scanUser(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.AppUser, error) {
	u, err := scanUser(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.AppUser, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.AppUser{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, u *model.AppUser) (*model.AppUser, error) {
	q := database.Conn(ctx, r.pool)

	var (
		saved *model.AppUser
		err   error
	)
	if u.IsNew() {
		saved, err = scanUser(q.QueryRow(ctx, `
			INSERT INTO users (username, password_hash, roles)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			u.Username, u.PasswordHash, u.Roles))
	} else {
		saved, err = scanUser(q.QueryRow(ctx, `
			UPDATE users
			SET username = $1, password_hash = $2, roles = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING `+userColumns,
			u.Username, u.PasswordHash, u.Roles, u.ID))
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("AppUser", u.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperror.AlreadyExists("AppUser", "username", u.Username)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
