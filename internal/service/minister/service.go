package minister

import (
	"context"
	"fmt"
	"time"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
	"github.com/RiegL/ostia-visitas-report/pkg/security"
)

type MinisterService interface {
	CreateMinister(ctx context.Context, req *model.CreateMinisterRequest) (*model.Minister, error)
	GetMinister(ctx context.Context, id int64) (*model.Minister, error)
	GetByUsername(ctx context.Context, username string) (*model.Minister, error)
	UpdateMinister(ctx context.Context, id int64, req *model.UpdateMinisterRequest) (*model.Minister, error)
	DeleteMinister(ctx context.Context, id int64) error
	ListMinisters(ctx context.Context) ([]*model.Minister, error)
	// Authenticate returns (nil, nil) when the credentials do not match,
	// keeping "bad credentials" distinguishable from transport failures.
	Authenticate(ctx context.Context, username, password string) (*model.Minister, error)
}

type Service struct {
	repo   repository.MinisterRepository
	hasher security.PasswordHasher
	logger *logger.Logger
}

func NewService(repo repository.MinisterRepository, hasher security.PasswordHasher, logger *logger.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger}
}

func (s *Service) CreateMinister(ctx context.Context, req *model.CreateMinisterRequest) (*model.Minister, error) {
	now := time.Now()

	role := req.Role
	if role == "" {
		role = model.MinisterRoleUser
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	minister := &model.Minister{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Username:  req.Username,
		Password:  hashed,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, minister)
	if err != nil {
		s.logger.Error(err, "failed to create minister", "username", req.Username)
		return nil, err
	}
	return created, nil
}

func (s *Service) GetMinister(ctx context.Context, id int64) (*model.Minister, error) {
	return s.repo.Get(ctx, id)
}

// GetByUsername returns (nil, nil) when no minister has the username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.Minister, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) UpdateMinister(ctx context.Context, id int64, req *model.UpdateMinisterRequest) (*model.Minister, error) {
	minister, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		minister.Name = *req.Name
	}
	if req.Phone != nil {
		minister.Phone = *req.Phone
	}
	if req.Email != nil {
		minister.Email = *req.Email
	}
	if req.Username != nil {
		minister.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperrors.BadRequest("invalid password", err)
		}
		minister.Password = hashed
	}
	if req.Role != nil {
		minister.Role = *req.Role
	}
	if req.IsActive != nil {
		minister.IsActive = *req.IsActive
	}
	minister.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, minister)
	if err != nil {
		s.logger.Error(err, "failed to update minister", "minister_id", id)
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteMinister(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(err, "failed to delete minister", "minister_id", id)
		return err
	}
	return nil
}

func (s *Service) ListMinisters(ctx context.Context) ([]*model.Minister, error) {
	ministers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(err, "failed to list ministers")
		return nil, fmt.Errorf("failed to list ministers: %w", err)
	}
	return ministers, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.Minister, error) {
	minister, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error(err, "failed to look up minister for authentication")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if minister == nil || !s.credentialsMatch(minister.Password, password) {
		return nil, nil
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, minister.ID, now); err != nil {
		// Best effort only, a stale lasLogin must not block the login.
		s.logger.Warn("failed to update last login", "minister_id", minister.ID, "error", err.Error())
	} else {
		minister.LastLogin = &now
	}

	return minister, nil
}
