package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"book-store-service/internal/domains/author/model"
	"book-store-service/internal/shared/apperror"
	"book-store-service/pkg/cache"
	"book-store-service/pkg/database"
)

const (
	authorCacheKeyPrefix = "author:"
	uniqueViolation      = "23505"
	authorColumns        = "id, first_name, last_name, email, nationality, created_at, updated_at"
)

// postgresRepository reads through cache on FindByID. cache may be nil.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Nationality, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	key := authorCacheKeyPrefix + id.String()
	useCache := r.cache != nil && !database.InTx(ctx)

	if useCache {
		var cached model.Author
		if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if useCache {
		if err := r.cache.Set(ctx, key, a, r.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("author cache set failed")
		}
	}
	return a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	return r.query(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY created_at, id`)
}

func (r *postgresRepository) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}
	return r.query(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`, ids)
}

func (r *postgresRepository) query(ctx context.Context, sql string, args ...any) ([]model.Author, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	q := database.Conn(ctx, r.pool)

	var (
		saved *model.Author
		err   error
	)
	if a.IsNew() {
		saved, err = scanAuthor(q.QueryRow(ctx, `
			INSERT INTO authors (first_name, last_name, email, nationality)
			VALUES ($1, $2, $3, $4)
			RETURNING `+authorColumns,
			a.FirstName, a.LastName, a.Email, a.Nationality))
	} else {
		saved, err = scanAuthor(q.QueryRow(ctx, `
			UPDATE authors
			SET first_name = $1, last_name = $2, email = $3, nationality = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING `+authorColumns,
			a.FirstName, a.LastName, a.Email, a.Nationality, a.ID))
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Author", a.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperror.AlreadyExists("Author", "email", a.Email)
		}
		return nil, fmt.Errorf("failed to save author: %w", err)
	}

	r.invalidate(ctx, saved.ID)
	return saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	// deleted only once the write is visible to other readers
	database.AfterCommit(ctx, func() {
		if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
			log.Warn().Err(err).Str("author_id", id.String()).Msg("author cache invalidation failed")
		}
	})
}
