package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	authormodel "book-store-service/internal/domains/author/model"
	"book-store-service/internal/domains/book/model"
)

func (s *bookService) CreateBookWithNewAuthor(
	ctx context.Context,
	bookReq model.CreateBookRequest,
	authorReq authormodel.CreateAuthorRequest,
) (*model.Book, error) {
	if err := bookReq.Validate(); err != nil {
		return nil, err
	}
	if err := authorReq.Validate(); err != nil {
		return nil, err
	}

	var (
		book    *model.Book
		author  *authormodel.Author
		created bool
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		author, created, err = s.authorCreator.FindOrCreateByEmail(ctx, authorReq)
		if err != nil {
			return err
		}

		book, err = s.repo.Save(ctx, bookReq.ToEntity())
		if err != nil {
			return fmt.Errorf("failed to create book: %w", err)
		}

		return s.links.Link(ctx, book.ID, author.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.attachAuthors(ctx, book); err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", book.ID.String()).
		Str("author_id", author.ID.String()).
		Bool("author_created", created).
		Msg("book created with author")
	return book, nil
}
