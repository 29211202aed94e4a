package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	"github.com/RiegL/ostia-visitas-report/internal/service/minister"
	"github.com/RiegL/ostia-visitas-report/internal/session"
	"github.com/RiegL/ostia-visitas-report/pkg/auth"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentSession(ctx context.Context, sessionID string) (*model.Session, error)
	// Revalidate refreshes a session from the database before a privileged
	// action, invalidating it if the minister is gone or deactivated.
	Revalidate(ctx context.Context, sess *model.Session) (*model.Session, error)
}

type Service struct {
	ministers    minister.MinisterService
	ministerRepo repository.MinisterRepository
	tokens       auth.TokenService
	sessions     session.Store
	logger       *logger.Logger
}

func NewService(
	ministers minister.MinisterService,
	ministerRepo repository.MinisterRepository,
	tokens auth.TokenService,
	sessions session.Store,
	logger *logger.Logger,
) *Service {
	return &Service{
		ministers:    ministers,
		ministerRepo: ministerRepo,
		tokens:       tokens,
		sessions:     sessions,
		logger:       logger,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	m, err := s.ministers.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperrors.Unauthorized(ErrInvalidCredentials)
	}

	sess := &model.Session{
		ID:         uuid.New().String(),
		MinisterID: m.ID,
		Username:   m.Username,
		Role:       m.Role,
		Minister:   m,
		CreatedAt:  time.Now(),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Error(err, "failed to persist session", "minister_id", m.ID)
		return nil, apperrors.Internal(err)
	}

	token, err := s.tokens.Generate(sess.ID, m)
	if err != nil {
		s.logger.Error(err, "failed to issue session token", "minister_id", m.ID)
		return nil, apperrors.Internal(err)
	}

	return &model.LoginResponse{Token: token, Minister: m}, nil
}

// Logout drops the persisted session. It needs no backend verification and
// tolerates an already-expired session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to delete session", "session_id", sessionID, "error", err.Error())
		return err
	}
	return nil
}

func (s *Service) CurrentSession(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *Service) Revalidate(ctx context.Context, sess *model.Session) (*model.Session, error) {
	m, err := s.ministerRepo.Get(ctx, sess.MinisterID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.invalidate(ctx, sess.ID)
			return nil, apperrors.Unauthorized(err)
		}
		return nil, err
	}
	if !m.IsActive {
		s.invalidate(ctx, sess.ID)
		return nil, apperrors.Unauthorized(errors.New("minister deactivated"))
	}

	sess.Username = m.Username
	sess.Role = m.Role
	sess.Minister = m
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Warn("failed to refresh session", "session_id", sess.ID, "error", err.Error())
	}
	return sess, nil
}

func (s *Service) invalidate(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to invalidate session", "session_id", sessionID, "error", err.Error())
	}
}
