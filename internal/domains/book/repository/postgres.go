package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"book-store-service/internal/domains/book/model"
	"book-store-service/internal/shared/apperror"
	"book-store-service/pkg/cache"
	"book-store-service/pkg/database"
)

const (
	bookCacheKeyPrefix = "book:"
	bookColumns        = "id, title, genre, price, stock, created_at, updated_at"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
}

// NewPostgresRepository reads through c on FindByID; c may be nil.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Genre, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	key := bookCacheKeyPrefix + id.String()
	useCache := r.cache != nil && !database.InTx(ctx)

	if useCache {
		var cached model.Book
		if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	b, err := scanBook(database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if useCache {
		if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("book cache set failed")
		}
	}
	return b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY created_at, id`)
}

func (r *postgresRepository) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Book, error) {
	if len(ids) == 0 {
		return []model.Book{}, nil
	}
	return r.query(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`, ids)
}

func (r *postgresRepository) query(ctx context.Context, sql string, args ...any) ([]model.Book, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	q := database.Conn(ctx, r.pool)

	var (
		saved *model.Book
		err   error
	)
	if b.IsNew() {
		saved, err = scanBook(q.QueryRow(ctx, `
			INSERT INTO books (title, genre, price, stock)
			VALUES ($1, $2, $3, $4)
			RETURNING `+bookColumns,
			b.Title, b.Genre, b.Price, b.Stock))
	} else {
		saved, err = scanBook(q.QueryRow(ctx, `
			UPDATE books
			SET title = $1, genre = $2, price = $3, stock = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING `+bookColumns,
			b.Title, b.Genre, b.Price, b.Stock, b.ID))
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("Book", b.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	r.invalidate(ctx, saved.ID)
	return saved, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
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
		if err := r.cache.Delete(ctx, bookCacheKeyPrefix+id.String()); err != nil {
			log.Warn().Err(err).Str("book_id", id.String()).Msg("book cache invalidation failed")
		}
	})
}
