package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-store-service/pkg/database"
)

type postgresAuthorLinkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAuthorLinkRepository(pool *pgxpool.Pool) AuthorLinkRepository {
	return &postgresAuthorLinkRepository{pool: pool}
}

func (r *postgresAuthorLinkRepository) Link(ctx context.Context, bookID, authorID uuid.UUID) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO book_authors (book_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (book_id, author_id) DO NOTHING`,
		bookID, authorID)
	if err != nil {
		return fmt.Errorf("failed to link author %s to book %s: %w", authorID, bookID, err)
	}
	return nil
}

func (r *postgresAuthorLinkRepository) AuthorIDsByBook(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	return r.ids(ctx, `SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY linked_at, author_id`, bookID)
}

func (r *postgresAuthorLinkRepository) BookIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	return r.ids(ctx, `SELECT book_id FROM book_authors WHERE author_id = $1 ORDER BY linked_at, book_id`, authorID)
}

func (r *postgresAuthorLinkRepository) ids(ctx context.Context, sql string, arg uuid.UUID) ([]uuid.UUID, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query book_authors: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan book_authors row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresAuthorLinkRepository) UnlinkBook(ctx context.Context, bookID uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("failed to unlink book %s: %w", bookID, err)
	}
	return nil
}

func (r *postgresAuthorLinkRepository) UnlinkAuthor(ctx context.Context, authorID uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM book_authors WHERE author_id = $1`, authorID); err != nil {
		return fmt.Errorf("failed to unlink author %s: %w", authorID, err)
	}
	return nil
}
