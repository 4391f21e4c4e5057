package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/pkg/audit"
	"github.com/GlebRadaev/donations/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice
type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

const TokenTTL = time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	adminRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	audit       audit.Logger
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, auditLog audit.Logger) *Service {
	return &Service{
		adminRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
		audit:       auditLog,
		now:         time.Now,
	}
}

// EnsureAdmin makes sure the configured admin can log in with password.
// Empty credentials disable the admin API.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		zap.L().Warn("admin credentials not configured, admin login disabled")
		return nil
	}
	existing, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}
	if existing != nil && s.hashService.ComparePassword(existing.PasswordHash, password) {
		return nil
	}

	hashed, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	admin := &domain.Admin{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: hashed,
		CreatedAt:    s.now().UTC(),
	}
	if existing != nil {
		admin.ID = existing.ID
		admin.CreatedAt = existing.CreatedAt
	}
	if _, err := s.adminRepo.Save(ctx, admin); err != nil {
		zap.L().Error("can't save admin: ", zap.Error(err))
		return err
	}
	zap.L().Info("admin account ready", zap.String("login", login))
	return nil
}

func (s *Service) Authenticate(ctx context.Context, login, password, clientIP string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if admin == nil || !s.hashService.ComparePassword(admin.PasswordHash, password) {
		s.audit.AdminLoginFailed(login, clientIP)
		zap.L().Info("invalid admin credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("admin successfully authenticated", zap.String("login", login))
	return admin, nil
}

func (s *Service) GenerateToken(adminID uuid.UUID) (string, error) {
	expirationTime := s.now().Add(TokenTTL)

	token, err := s.jwtService.GenerateJWT(adminID.String(), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
