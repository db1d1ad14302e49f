package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/seaquote/internal/auth/domain"
	"github.com/harborline/seaquote/internal/auth/password"
	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/config"
	"github.com/harborline/seaquote/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minPasswordLen = 8

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Clock  clock.Clock
	Repo   domain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	repo       domain.Repository
	sessionTTL time.Duration
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("auth.service"),
		clock:      p.Clock,
		repo:       p.Repo,
		sessionTTL: time.Duration(p.Config.SessionTTLHours) * time.Hour,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if len(req.Password) < minPasswordLen {
		return nil, domain.ErrInvalidPassword
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	switch role {
	case domain.RoleAdmin, domain.RoleOperator, domain.RoleCustomer:
	default:
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, s.db, user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	s.log.Info("user registered", zap.String("username", user.Username), zap.String("role", user.Role))
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, pass string) (*domain.User, *domain.Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.repo.FindUserByUsername(ctx, s.db, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !password.Verify(pass, user.PasswordHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if password.NeedsRehash(user.PasswordHash) {
		if rehashed, err := password.Hash(pass); err == nil {
			user.PasswordHash = rehashed
			if err := s.repo.UpdatePasswordHash(ctx, s.db, user.ID, rehashed); err != nil {
				s.log.Warn("failed to persist rehashed password", zap.Error(err))
			}
		}
	}

	if err := s.repo.TouchLastLogin(ctx, s.db, user.ID); err != nil {
		s.log.Warn("failed to update last login", zap.Error(err))
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.clock.Now().Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, s.db, session); err != nil {
		return nil, nil, err
	}

	s.log.Info("login", zap.String("username", user.Username))
	return user, session, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, s.db, sessionID)
}

func (s *Service) Authenticate(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.repo.FindSession(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.ExpiresAt.Before(s.clock.Now()) {
		_ = s.repo.DeleteSession(ctx, s.db, session.ID)
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindUserByID(ctx, s.db, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
