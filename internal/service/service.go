package service

import (
	"context"

	"github.com/GlebRadaev/donations/internal/config"
	"github.com/GlebRadaev/donations/internal/handlers/admin"
	"github.com/GlebRadaev/donations/internal/handlers/donations"
	"github.com/GlebRadaev/donations/internal/handlers/payments"
	"github.com/GlebRadaev/donations/internal/handlers/stats"
	"github.com/GlebRadaev/donations/internal/reconcile"
	"github.com/GlebRadaev/donations/internal/repo"
	"github.com/GlebRadaev/donations/internal/service/authservice"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/internal/service/paymentservice"
	"github.com/GlebRadaev/donations/internal/service/statsservice"
	"github.com/GlebRadaev/donations/pkg/audit"
	pkgauth "github.com/GlebRadaev/donations/pkg/auth"
)

type DonationService interface {
	donations.Service
	admin.DonationService
}

type PaymentService interface {
	payments.Service
	reconcile.Payments
}

type StatsService interface {
	stats.Service
	admin.LedgerService
}

type AuthService interface {
	admin.AuthService
	EnsureAdmin(ctx context.Context, login, password string) error
}

// StatsCache is read by the stats service and cleared after each credit or
// deletion.
type StatsCache interface {
	statsservice.Cache
	paymentservice.StatsCache
}

type Services struct {
	DonationService DonationService
	PaymentService  PaymentService
	StatsService    StatsService
	AuthService     AuthService
	TokenValidator  pkgauth.TokenValidator
}

func New(cfg *config.Config, repo *repo.Repositories, gw donationservice.Gateway, cache StatsCache, auditLog audit.Logger) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	donationService := donationservice.New(repo.DonationRepo, gw, cache, auditLog)
	paymentService := paymentservice.New(
		cfg.GatewayKeySecret,
		repo.DonationRepo,
		repo.LedgerRepo,
		repo.EntryRepo,
		repo.TxManager,
		cache,
		auditLog,
	)
	statsService := statsservice.New(repo.DonationRepo, repo.LedgerRepo, repo.EntryRepo, cache)
	authService := authservice.New(repo.AdminRepo, &pkgauth.HashService{}, jwtService, auditLog)

	return &Services{
		DonationService: donationService,
		PaymentService:  paymentService,
		StatsService:    statsService,
		AuthService:     authService,
		TokenValidator:  jwtService,
	}
}
