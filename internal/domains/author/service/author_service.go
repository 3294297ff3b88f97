package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-store-service/internal/domains/author/model"
	"book-store-service/internal/domains/author/repository"
	bookmodel "book-store-service/internal/domains/book/model"
	"book-store-service/internal/shared/apperror"
	"book-store-service/internal/shared/uniqueness"
	"book-store-service/pkg/database"
)

type authorService struct {
	repo       repository.RepositoryInterface
	books      BookLookup
	links      BookLinks
	tx         database.Transactor
	emailGuard *uniqueness.Guard
}

func NewAuthorService(
	repo repository.RepositoryInterface,
	books BookLookup,
	links BookLinks,
	tx database.Transactor,
) ServiceInterface {
	return &authorService{
		repo:       repo,
		books:      books,
		links:      links,
		tx:         tx,
		emailGuard: uniqueness.NewGuard("Author", "email", uniqueness.FromLookup(repo.FindByEmail)),
	}
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.emailGuard.Ensure(ctx, req.Email); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("author create rejected")
		return nil, err
	}

	created, err := s.repo.Save(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	log.Info().Str("author_id", created.ID.String()).Str("email", created.Email).Msg("author created")
	created.Books = []model.BookRef{}
	return created, nil
}

func (s *authorService) CreateWithBooks(ctx context.Context, req model.CreateAuthorRequest, bookIDs []uuid.UUID) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.emailGuard.Ensure(ctx, req.Email); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("author create rejected")
		return nil, err
	}

	var created *model.Author
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		books, err := s.books.FindAllByID(ctx, bookIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve books: %w", err)
		}

		created, err = s.repo.Save(ctx, req.ToEntity())
		if err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}

		created.Books = make([]model.BookRef, 0, len(books))
		for _, b := range books {
			if err := s.links.Link(ctx, b.ID, created.ID); err != nil {
				return err
			}
			created.Books = append(created.Books, toBookRef(b))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if skipped := len(uniqueIDs(bookIDs)) - len(created.Books); skipped > 0 {
		log.Warn().Str("author_id", created.ID.String()).Int("skipped", skipped).Msg("unknown book ids ignored")
	}
	log.Info().
		Str("author_id", created.ID.String()).
		Int("books", len(created.Books)).
		Msg("author created with books")
	return created, nil
}

func (s *authorService) FindOrCreateByEmail(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, bool, error) {
	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find author by email: %w", err)
	}
	if existing != nil {
		log.Debug().Str("author_id", existing.ID.String()).Str("email", req.Email).Msg("reusing existing author")
		return existing, false, nil
	}

	created, err := s.repo.Save(ctx, req.ToEntity())
	if apperror.IsAlreadyExists(err) {
		// lost a race with a concurrent insert of the same email
		existing, err = s.repo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, false, fmt.Errorf("failed to find author by email: %w", err)
		}
		if existing != nil {
			return existing, false, nil
		}
		return nil, false, apperror.AlreadyExists("Author", "email", req.Email)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create author: %w", err)
	}

	log.Info().Str("author_id", created.ID.String()).Str("email", created.Email).Msg("author created")
	return created, true, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound("Author", id)
	}
	if err := s.attachBooks(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		if err := s.attachBooks(ctx, &authors[i]); err != nil {
			return nil, err
		}
	}
	return authors, nil
}

// Update merges the present fields. Email uniqueness is enforced by the
// store only.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound("Author", id)
	}

	req.ApplyTo(a)
	updated, err := s.repo.Save(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if err := s.attachBooks(ctx, updated); err != nil {
		return nil, err
	}

	log.Info().Str("author_id", id.String()).Msg("author updated")
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Author", id)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.links.UnlinkAuthor(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	log.Info().Str("author_id", id.String()).Msg("author deleted")
	return nil
}

func (s *authorService) attachBooks(ctx context.Context, a *model.Author) error {
	ids, err := s.links.BookIDsByAuthor(ctx, a.ID)
	if err != nil {
		return err
	}
	books, err := s.books.FindAllByID(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]bookmodel.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	// keep link order
	a.Books = make([]model.BookRef, 0, len(books))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			a.Books = append(a.Books, toBookRef(b))
		}
	}
	return nil
}

func toBookRef(b bookmodel.Book) model.BookRef {
	return model.BookRef{ID: b.ID, Title: b.Title, Genre: b.Genre, Price: b.Price, Stock: b.Stock}
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
