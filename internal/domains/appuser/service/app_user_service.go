package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"book-store-service/internal/domains/appuser/model"
	"book-store-service/internal/domains/appuser/repository"
	"book-store-service/internal/shared/apperror"
	"book-store-service/internal/shared/uniqueness"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateAppUserRequest) (*model.AppUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AppUser, error)
	GetAll(ctx context.Context) ([]model.AppUser, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAppUserRequest) (*model.AppUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appUserService struct {
	repo          repository.RepositoryInterface
	bcryptCost    int
	usernameGuard *uniqueness.Guard
}

func NewAppUserService(repo repository.RepositoryInterface, bcryptCost int) ServiceInterface {
	return &appUserService{
		repo:          repo,
		bcryptCost:    bcryptCost,
		usernameGuard: uniqueness.NewGuard("AppUser", "username", uniqueness.FromLookup(repo.FindByUsername)),
	}
}

func (s *appUserService) Create(ctx context.Context, req model.CreateAppUserRequest) (*model.AppUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.usernameGuard.Ensure(ctx, req.Username); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("user create rejected")
		return nil, err
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Save(ctx, &model.AppUser{
		Username:     req.Username,
		PasswordHash: hash,
		Roles:        model.NormalizeRoles(req.Roles),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", created.ID.String()).Str("username", created.Username).Msg("user created")
	return created, nil
}

func (s *appUserService) GetByID(ctx context.Context, id uuid.UUID) (*model.AppUser, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("AppUser", id)
	}
	return u, nil
}

func (s *appUserService) GetAll(ctx context.Context) ([]model.AppUser, error) {
	return s.repo.FindAll(ctx)
}

func (s *appUserService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAppUserRequest) (*model.AppUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Password != nil {
		if u.PasswordHash, err = s.hash(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Roles != nil {
		u.Roles = model.NormalizeRoles(*req.Roles)
	}

	updated, err := s.repo.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	log.Info().Str("user_id", id.String()).Msg("user updated")
	return updated, nil
}

func (s *appUserService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("AppUser", id)
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *appUserService) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}
