package service

import (
	"context"

	"github.com/google/uuid"

	authormodel "book-store-service/internal/domains/author/model"
	"book-store-service/internal/domains/book/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AttachAuthor is idempotent: attaching twice leaves one link.
	AttachAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*model.Book, error)
	// CreateBookWithNewAuthor stores the book linked to the author owning
	// authorReq.Email, creating that author first when needed.
	CreateBookWithNewAuthor(ctx context.Context, bookReq model.CreateBookRequest, authorReq authormodel.CreateAuthorRequest) (*model.Book, error)
}

// AuthorLookup reads authors. Satisfied by the author repository.
type AuthorLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error)
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]authormodel.Author, error)
}

// AuthorCreator dedups authors by email. Satisfied by the author service.
type AuthorCreator interface {
	FindOrCreateByEmail(ctx context.Context, req authormodel.CreateAuthorRequest) (*authormodel.Author, bool, error)
}
