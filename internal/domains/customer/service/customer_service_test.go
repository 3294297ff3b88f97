package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-store-service/internal/domains/customer/model"
	"book-store-service/internal/domains/customer/repository"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/apperror"
)

func jane() model.CreateCustomerRequest {
	return model.CreateCustomerRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@doe.org",
		PhoneNumber: "555-0100",
		Address:     "1 High Street",
	}
}

func TestCustomerService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(repository.NewMemoryRepository(memstore.New()))

	created, err := svc.Create(ctx, jane())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", created.FullName())

	_, err = svc.Create(ctx, jane())
	assert.EqualError(t, err, "Customer already exists with email: jane@doe.org")

	address := "2 Low Road"
	updated, err := svc.Update(ctx, created.ID, model.UpdateCustomerRequest{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "2 Low Road", updated.Address)
	assert.Equal(t, "jane@doe.org", updated.Email)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, apperror.IsNotFound(svc.Delete(ctx, created.ID)))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCustomerService_UpdateDoesNotRecheckUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(repository.NewMemoryRepository(memstore.New()))

	created, err := svc.Create(ctx, jane())
	require.NoError(t, err)

	same := "jane@doe.org"
	_, err = svc.Update(ctx, created.ID, model.UpdateCustomerRequest{Email: &same})
	assert.NoError(t, err)

	bad := "nope"
	_, err = svc.Update(ctx, created.ID, model.UpdateCustomerRequest{Email: &bad})
	assert.EqualError(t, err, "email - Invalid email format")
}

func TestCustomerService_GetByIDNotFound(t *testing.T) {
	svc := NewCustomerService(repository.NewMemoryRepository(memstore.New()))
	_, err := svc.GetByID(context.Background(), uuid.New())

	entity, ok := apperror.NotFoundEntity(err)
	require.True(t, ok)
	assert.Equal(t, "Customer", entity)
}
