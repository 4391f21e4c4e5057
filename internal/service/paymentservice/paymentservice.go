package paymentservice

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
	"github.com/GlebRadaev/donations/internal/pg"
	"github.com/GlebRadaev/donations/pkg/audit"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice
type DonationRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, paymentID string, paidAt time.Time) (*domain.Donation, error)
	MarkFailed(ctx context.Context, id uuid.UUID) (bool, error)
	RefreshDonorTotals(ctx context.Context, id uuid.UUID, email string) (int, decimal.Decimal, error)
}

type LedgerRepo interface {
	Increment(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Total(ctx context.Context) (decimal.Decimal, error)
}

type EntryRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
}

type StatsCache interface {
	Invalidate(ctx context.Context) error
}

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrOrderMismatch    = errors.New("order does not match donation")
	ErrAmountMismatch   = errors.New("amount does not match donation")
	ErrNotPending       = errors.New("donation is not pending")
)

type Service struct {
	secret    string
	donations DonationRepo
	ledger    LedgerRepo
	entries   EntryRepo
	txManager pg.TXManager
	cache     StatsCache
	audit     audit.Logger
	now       func() time.Time
}

func New(secret string, donations DonationRepo, ledger LedgerRepo, entries EntryRepo, txManager pg.TXManager, cache StatsCache, auditLog audit.Logger) *Service {
	return &Service{
		secret:    secret,
		donations: donations,
		ledger:    ledger,
		entries:   entries,
		txManager: txManager,
		cache:     cache,
		audit:     auditLog,
		now:       time.Now,
	}
}

// Verify checks a payment proof against the stored donation and completes it.
// Rejected proofs change nothing.
func (s *Service) Verify(ctx context.Context, proof domain.PaymentProof) (*domain.VerifiedPayment, error) {
	donation, err := s.donations.FindByID(ctx, proof.DonationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}

	reject := func(event string, err error) (*domain.VerifiedPayment, error) {
		s.audit.PaymentRejected(event, donation.ID.String(), proof.OrderID, proof.PaymentID, proof.ClientIP)
		zap.L().Warn("payment proof rejected",
			zap.String("donation_id", donation.ID.String()),
			zap.String("reason", event),
		)
		return nil, err
	}

	if !gateway.VerifySignature(s.secret, proof.OrderID, proof.PaymentID, proof.Signature) {
		return reject(audit.EventSignatureMismatch, ErrInvalidSignature)
	}
	if proof.OrderID != donation.OrderID {
		return reject(audit.EventOrderMismatch, ErrOrderMismatch)
	}
	if proof.Amount != nil && !proof.Amount.Equal(donation.Amount) {
		return reject(audit.EventAmountMismatch, ErrAmountMismatch)
	}

	return s.Complete(ctx, donation, proof.PaymentID)
}

// Complete transitions a pending donation to completed and credits the ledger
// in one transaction. A donation that is already completed is returned as is
// with the current total and Credited set to false.
func (s *Service) Complete(ctx context.Context, donation *domain.Donation, paymentID string) (*domain.VerifiedPayment, error) {
	switch donation.PaymentStatus {
	case domain.PaymentFailed, domain.PaymentRefunded:
		return nil, ErrNotPending
	}

	result := &domain.VerifiedPayment{Donation: donation}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.donations.MarkCompleted(ctx, donation.ID, paymentID, s.now().UTC())
		if err != nil {
			return err
		}
		if updated == nil {
			return s.readCurrent(ctx, donation, result)
		}

		entry := &domain.LedgerEntry{
			DonationID: updated.ID,
			PaymentID:  paymentID,
			Amount:     updated.Amount,
			Currency:   updated.Currency,
			CreatedAt:  *updated.PaymentDate,
		}
		if err := s.entries.Create(ctx, entry); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
		total, err := s.ledger.Increment(ctx, updated.Amount)
		if err != nil {
			return fmt.Errorf("increment ledger: %w", err)
		}
		count, lifetime, err := s.donations.RefreshDonorTotals(ctx, updated.ID, updated.Email)
		if err != nil {
			return fmt.Errorf("refresh donor totals: %w", err)
		}
		updated.DonorDonationCount = count
		updated.DonorTotalDonated = lifetime

		result.Donation = updated
		result.TotalRaised = total
		result.Credited = true
		return nil
	})
	if err != nil {
		zap.L().Error("payment completion failed", zap.String("donation_id", donation.ID.String()), zap.Error(err))
		return nil, err
	}

	if result.Credited {
		if err := s.cache.Invalidate(ctx); err != nil {
			zap.L().Warn("fund stats cache invalidation failed", zap.Error(err))
		}
		zap.L().Info("donation completed",
			zap.String("donation_id", donation.ID.String()),
			zap.String("payment_id", paymentID),
			zap.String("total_raised", result.TotalRaised.String()),
		)
	}
	return result, nil
}

func (s *Service) readCurrent(ctx context.Context, donation *domain.Donation, result *domain.VerifiedPayment) error {
	current, err := s.donations.FindByID(ctx, donation.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrDonationNotFound
	}
	if !current.IsCompleted() {
		return ErrNotPending
	}
	total, err := s.ledger.Total(ctx)
	if err != nil {
		return err
	}
	result.Donation = current
	result.TotalRaised = total
	return nil
}

// Fail marks a pending donation as failed. It reports false when the donation
// had already left the pending state.
func (s *Service) Fail(ctx context.Context, donation *domain.Donation) (bool, error) {
	failed, err := s.donations.MarkFailed(ctx, donation.ID)
	if err != nil {
		return false, err
	}
	if failed {
		zap.L().Info("donation marked failed", zap.String("donation_id", donation.ID.String()))
	}
	return failed, nil
}
