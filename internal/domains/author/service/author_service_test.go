package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-store-service/internal/domains/author/model"
	"book-store-service/internal/domains/author/repository"
	"book-store-service/internal/domains/author/service"
	bookmodel "book-store-service/internal/domains/book/model"
	bookrepo "book-store-service/internal/domains/book/repository"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

type fixture struct {
	svc     service.ServiceInterface
	authors repository.RepositoryInterface
	books   bookrepo.RepositoryInterface
	links   bookrepo.AuthorLinkRepository
}

func newFixture() *fixture {
	store := memstore.New()
	f := &fixture{
		authors: repository.NewMemoryRepository(store),
		books:   bookrepo.NewMemoryRepository(store),
		links:   bookrepo.NewMemoryAuthorLinkRepository(store),
	}
	f.svc = service.NewAuthorService(f.authors, f.books, f.links, store)
	return f
}

func (f *fixture) seedBook(t *testing.T, title string) *bookmodel.Book {
	t.Helper()
	b, err := f.books.Save(context.Background(), &bookmodel.Book{
		Title: title,
		Genre: "Fiction",
		Price: decimal.NewFromInt(10),
		Stock: 1,
	})
	require.NoError(t, err)
	return b
}

func orwell() model.CreateAuthorRequest {
	return model.CreateAuthorRequest{
		FirstName:   "George",
		LastName:    "Orwell",
		Email:       "george.orwell@email.com",
		Nationality: "British",
	}
}

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.Create(ctx, orwell())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "George", created.FirstName)
	assert.Empty(t, created.Books)

	_, err = f.svc.Create(ctx, orwell())
	require.Error(t, err)
	assert.True(t, apperror.IsAlreadyExists(err))
	assert.EqualError(t, err, "Author already exists with email: george.orwell@email.com")

	all, err := f.svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAuthorService_CreateValidationFailsBeforeStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req := orwell()
	req.Email = "not-an-email"
	_, err := f.svc.Create(ctx, req)
	assert.EqualError(t, err, "email - Invalid email format")

	all, err := f.authors.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAuthorService_CreateWithBooksSkipsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	animalFarm := f.seedBook(t, "Animal Farm")
	nineteen := f.seedBook(t, "1984")

	created, err := f.svc.CreateWithBooks(ctx, orwell(), []uuid.UUID{animalFarm.ID, uuid.New(), nineteen.ID})
	require.NoError(t, err)
	require.Len(t, created.Books, 2)

	titles := []string{created.Books[0].Title, created.Books[1].Title}
	assert.ElementsMatch(t, []string{"Animal Farm", "1984"}, titles)

	authorIDs, err := f.links.AuthorIDsByBook(ctx, animalFarm.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.ID}, authorIDs)

	fetched, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Books, 2)
}

func TestAuthorService_CreateWithBooksDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	book := f.seedBook(t, "Animal Farm")

	_, err := f.svc.Create(ctx, orwell())
	require.NoError(t, err)

	_, err = f.svc.CreateWithBooks(ctx, orwell(), []uuid.UUID{book.ID})
	assert.True(t, apperror.IsAlreadyExists(err))

	ids, err := f.links.AuthorIDsByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAuthorService_FindOrCreateByEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, created, err := f.svc.FindOrCreateByEmail(ctx, orwell())
	require.NoError(t, err)
	assert.True(t, created)

	req := orwell()
	req.FirstName = "Eric"
	second, created, err := f.svc.FindOrCreateByEmail(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "George", second.FirstName)
}

func TestAuthorService_GetByIDNotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	_, err := f.svc.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.EqualError(t, err, "Author not found with id "+id.String())
}

func TestAuthorService_UpdateMergesPresentFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.svc.Create(ctx, orwell())
	require.NoError(t, err)

	nationality := "English"
	updated, err := f.svc.Update(ctx, created.ID, model.UpdateAuthorRequest{Nationality: &nationality})
	require.NoError(t, err)
	assert.Equal(t, "English", updated.Nationality)
	assert.Equal(t, "George", updated.FirstName)
	assert.Equal(t, "george.orwell@email.com", updated.Email)

	_, err = f.svc.Update(ctx, uuid.New(), model.UpdateAuthorRequest{Nationality: &nationality})
	assert.True(t, apperror.IsNotFound(err))
}

func TestAuthorService_DeleteRemovesLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	book := f.seedBook(t, "Animal Farm")
	created, err := f.svc.CreateWithBooks(ctx, orwell(), []uuid.UUID{book.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))

	ids, err := f.links.AuthorIDsByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	err = f.svc.Delete(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAuthorService_BooksListedInLinkOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	older := f.seedBook(t, "Animal Farm")
	newer := f.seedBook(t, "1984")

	created, err := f.svc.Create(ctx, orwell())
	require.NoError(t, err)
	require.NoError(t, f.links.Link(ctx, newer.ID, created.ID))
	require.NoError(t, f.links.Link(ctx, older.ID, created.ID))

	got, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Books, 2)
	assert.Equal(t, newer.ID, got.Books[0].ID)
	assert.Equal(t, older.ID, got.Books[1].ID)
}
