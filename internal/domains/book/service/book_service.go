package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "book-store-service/internal/domains/author/model"
	"book-store-service/internal/domains/book/model"
	"book-store-service/internal/domains/book/repository"
	"book-store-service/internal/shared/apperror"
	"book-store-service/pkg/database"
)

type bookService struct {
	repo          repository.RepositoryInterface
	links         repository.AuthorLinkRepository
	authors       AuthorLookup
	authorCreator AuthorCreator
	tx            database.Transactor
}

func NewBookService(
	repo repository.RepositoryInterface,
	links repository.AuthorLinkRepository,
	authors AuthorLookup,
	authorCreator AuthorCreator,
	tx database.Transactor,
) ServiceInterface {
	return &bookService{
		repo:          repo,
		links:         links,
		authors:       authors,
		authorCreator: authorCreator,
		tx:            tx,
	}
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Save(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	log.Info().Str("book_id", created.ID.String()).Str("title", created.Title).Msg("book created")
	created.Authors = []model.AuthorRef{}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if err := s.attachAuthors(ctx, &books[i]); err != nil {
			return nil, err
		}
	}
	return books, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(b)
	updated, err := s.repo.Save(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if err := s.attachAuthors(ctx, updated); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", id.String()).Msg("book updated")
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Book", id)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.links.UnlinkBook(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	log.Info().Str("book_id", id.String()).Msg("book deleted")
	return nil
}

func (s *bookService) AttachAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*model.Book, error) {
	b, err := s.find(ctx, bookID)
	if err != nil {
		return nil, err
	}

	a, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		log.Warn().Str("book_id", bookID.String()).Str("author_id", authorID.String()).Msg("attach to unknown author")
		return nil, apperror.NotFound("Author", authorID)
	}

	if err := s.links.Link(ctx, bookID, authorID); err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, b); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", bookID.String()).Str("author_id", authorID.String()).Msg("author attached")
	return b, nil
}

func (s *bookService) find(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound("Book", id)
	}
	return b, nil
}

func (s *bookService) attachAuthors(ctx context.Context, b *model.Book) error {
	ids, err := s.links.AuthorIDsByBook(ctx, b.ID)
	if err != nil {
		return err
	}
	authors, err := s.authors.FindAllByID(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*authormodel.Author, len(authors))
	for i := range authors {
		byID[authors[i].ID] = &authors[i]
	}
	// keep link order
	b.Authors = make([]model.AuthorRef, 0, len(authors))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			b.Authors = append(b.Authors, toAuthorRef(a))
		}
	}
	return nil
}

func toAuthorRef(a *authormodel.Author) model.AuthorRef {
	return model.AuthorRef{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Nationality: a.Nationality,
	}
}
