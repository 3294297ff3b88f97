package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/book/model"
)

// RepositoryInterface is the book persistence contract.
// Lookups return (nil, nil) when nothing matches.
type RepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	// FindAllByID skips ids that do not exist.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]model.Book, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, b *model.Book) (*model.Book, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// AuthorLinkRepository stores the book_authors association.
// It is the only place the relation lives; both directions read from it.
type AuthorLinkRepository interface {
	// Link is a no-op when the pair is already linked.
	Link(ctx context.Context, bookID, authorID uuid.UUID) error
	AuthorIDsByBook(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error)
	BookIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)
	UnlinkBook(ctx context.Context, bookID uuid.UUID) error
	UnlinkAuthor(ctx context.Context, authorID uuid.UUID) error
}
