package service

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/domains/author/model"
	bookmodel "book-store-service/internal/domains/book/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error)
	// CreateWithBooks links the new author to every id in bookIDs that exists.
	CreateWithBooks(ctx context.Context, req model.CreateAuthorRequest, bookIDs []uuid.UUID) (*model.Author, error)
	// FindOrCreateByEmail returns the author owning req.Email, inserting one
	// when there is none. created reports which happened.
	FindOrCreateByEmail(ctx context.Context, req model.CreateAuthorRequest) (author *model.Author, created bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	GetAll(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookLookup resolves book ids. Unknown ids are absent from the result.
type BookLookup interface {
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]bookmodel.Book, error)
}

// BookLinks is the author side of the book_authors association.
type BookLinks interface {
	Link(ctx context.Context, bookID, authorID uuid.UUID) error
	BookIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)
	UnlinkAuthor(ctx context.Context, authorID uuid.UUID) error
}
