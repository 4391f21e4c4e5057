package donationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/gateway"
	"github.com/GlebRadaev/donations/pkg/audit"
	"github.com/GlebRadaev/donations/pkg/money"
	"github.com/GlebRadaev/donations/pkg/validate"
)

//go:generate mockgen -source=donationservice.go -destination=mock_donationservice.go -package=donationservice
type Repo interface {
	Create(ctx context.Context, d *domain.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	FindByReceipt(ctx context.Context, receipt string) (*domain.Donation, error)
	List(ctx context.Context, filter domain.DonationFilter) (*domain.DonationPage, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error)
	KeyID() string
}

type StatsCache interface {
	Invalidate(ctx context.Context) error
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidReceipt   = errors.New("invalid receipt number")
)

type Service struct {
	repo    Repo
	gateway Gateway
	cache   StatsCache
	audit   audit.Logger
	now     func() time.Time
}

func New(repo Repo, gw Gateway, cache StatsCache, auditLog audit.Logger) *Service {
	return &Service{
		repo:    repo,
		gateway: gw,
		cache:   cache,
		audit:   auditLog,
		now:     time.Now,
	}
}

// CreateDonation opens a gateway order and stores a pending donation for it.
// Nothing is stored when the gateway refuses the order.
func (s *Service) CreateDonation(ctx context.Context, req domain.DonationRequest) (*domain.Donation, error) {
	minor, err := money.ToMinorUnits(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	receipt, err := validate.NewReceiptNumber(now)
	if err != nil {
		return nil, fmt.Errorf("generate receipt: %w", err)
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:         minor,
		Currency:       req.Currency,
		Receipt:        receipt,
		PaymentCapture: 1,
		Notes: map[string]string{
			"name":  req.Name,
			"email": req.Email,
		},
	})
	if err != nil {
		zap.L().Warn("gateway order not created", zap.String("receipt", receipt), zap.Error(err))
		return nil, err
	}

	donation := &domain.Donation{
		ID:                uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		Country:           req.Country,
		State:             req.State,
		City:              req.City,
		PostalCode:        req.PostalCode,
		Amount:            req.Amount,
		Currency:          req.Currency,
		OrderID:           order.ID,
		PaymentStatus:     domain.PaymentPending,
		Receipt:           receipt,
		ClientIP:          req.ClientIP,
		DonorTotalDonated: decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		zap.L().Error("can't save donation", zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("donation created",
		zap.String("donation_id", donation.ID.String()),
		zap.String("order_id", order.ID),
		zap.String("amount", donation.Amount.String()),
		zap.String("currency", donation.Currency),
	)
	return donation, nil
}

func (s *Service) GatewayKey() string {
	return s.gateway.KeyID()
}

func (s *Service) GetDonation(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

// GetReceipt returns the completed donation behind a receipt number.
func (s *Service) GetReceipt(ctx context.Context, receipt string) (*domain.Donation, error) {
	if !validate.IsReceipt(receipt) {
		return nil, ErrInvalidReceipt
	}
	donation, err := s.repo.FindByReceipt(ctx, receipt)
	if err != nil {
		return nil, err
	}
	if donation == nil || !donation.IsCompleted() {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

func (s *Service) ListDonations(ctx context.Context, filter domain.DonationFilter) (*domain.DonationPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}
	page, err := s.repo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list donations", zap.Error(err))
		return nil, err
	}
	return page, nil
}

// DeleteDonation removes the record only. The funds ledger is never reduced.
func (s *Service) DeleteDonation(ctx context.Context, adminID string, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDonationNotFound
	}
	s.audit.AdminAction(audit.EventAdminDeletion, adminID, id.String())
	if err := s.cache.Invalidate(ctx); err != nil {
		zap.L().Warn("fund stats cache invalidation failed", zap.Error(err))
	}
	zap.L().Info("donation deleted", zap.String("donation_id", id.String()), zap.String("admin_id", adminID))
	return nil
}
