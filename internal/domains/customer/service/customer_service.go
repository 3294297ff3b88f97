package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-store-service/internal/domains/customer/model"
	"book-store-service/internal/domains/customer/repository"
	"book-store-service/internal/shared/apperror"
	"book-store-service/internal/shared/uniqueness"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateCustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo       repository.RepositoryInterface
	emailGuard *uniqueness.Guard
}

func NewCustomerService(repo repository.RepositoryInterface) ServiceInterface {
	return &customerService{
		repo:       repo,
		emailGuard: uniqueness.NewGuard("Customer", "email", uniqueness.FromLookup(repo.FindByEmail)),
	}
}

func (s *customerService) Create(ctx context.Context, req model.CreateCustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.emailGuard.Ensure(ctx, req.Email); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("customer create rejected")
		return nil, err
	}

	created, err := s.repo.Save(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	log.Info().Str("customer_id", created.ID.String()).Msg("customer created")
	return created, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("Customer", id)
	}
	return c, nil
}

func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req model.UpdateCustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(c)
	updated, err := s.repo.Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	log.Info().Str("customer_id", id.String()).Msg("customer updated")
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Customer", id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Info().Str("customer_id", id.String()).Msg("customer deleted")
	return nil
}
