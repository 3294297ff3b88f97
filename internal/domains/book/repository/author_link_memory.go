package repository

import (
	"context"

	"github.com/google/uuid"

	"book-store-service/internal/infrastructure/memstore"
)

type linkKey struct {
	bookID   uuid.UUID
	authorID uuid.UUID
}

type memoryAuthorLinkRepository struct {
	links *memstore.Table[linkKey, linkKey]
}

func NewMemoryAuthorLinkRepository(store *memstore.Store) AuthorLinkRepository {
	return &memoryAuthorLinkRepository{links: memstore.NewTable[linkKey, linkKey](store)}
}

func (r *memoryAuthorLinkRepository) Link(ctx context.Context, bookID, authorID uuid.UUID) error {
	k := linkKey{bookID: bookID, authorID: authorID}
	r.links.Put(ctx, k, k)
	return nil
}

func (r *memoryAuthorLinkRepository) AuthorIDsByBook(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, l := range r.links.Filter(ctx, func(l linkKey) bool { return l.bookID == bookID }) {
		ids = append(ids, l.authorID)
	}
	return ids, nil
}

func (r *memoryAuthorLinkRepository) BookIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, l := range r.links.Filter(ctx, func(l linkKey) bool { return l.authorID == authorID }) {
		ids = append(ids, l.bookID)
	}
	return ids, nil
}

func (r *memoryAuthorLinkRepository) UnlinkBook(ctx context.Context, bookID uuid.UUID) error {
	r.links.DeleteWhere(ctx, func(l linkKey) bool { return l.bookID == bookID })
	return nil
}

func (r *memoryAuthorLinkRepository) UnlinkAuthor(ctx context.Context, authorID uuid.UUID) error {
	r.links.DeleteWhere(ctx, func(l linkKey) bool { return l.authorID == authorID })
	return nil
}
