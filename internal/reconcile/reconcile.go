// Package reconcile settles donations whose browser callback never arrived by
// asking the gateway for the order state.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/donations/internal/config"
	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/gateway"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	batchLimit    = 100
	workers       = 5
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile
type Repo interface {
	FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Donation, error)
}

type Gateway interface {
	FetchOrder(ctx context.Context, orderID string) (*gateway.Order, error)
	FetchOrderPayments(ctx context.Context, orderID string) ([]gateway.Payment, error)
}

type Payments interface {
	Complete(ctx context.Context, donation *domain.Donation, paymentID string) (*domain.VerifiedPayment, error)
	Fail(ctx context.Context, donation *domain.Donation) (bool, error)
}

type Service struct {
	repo       Repo
	gateway    Gateway
	payments   Payments
	workerPool WorkerPoolI
	inFlight   sync.Map

	interval   time.Duration
	after      time.Duration
	pendingTTL time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(cfg *config.Config, repo Repo, gw Gateway, payments Payments) *Service {
	return &Service{
		repo:       repo,
		gateway:    gw,
		payments:   payments,
		workerPool: NewWorkerPool(workers),
		interval:   cfg.ReconcileInterval,
		after:      cfg.ReconcileAfter,
		pendingTTL: cfg.PendingTTL,
		now:        time.Now,
		sleep:      sleep,
	}
}

// Start polls until ctx is done, then drains the worker pool.
func (s *Service) Start(ctx context.Context) {
	defer s.workerPool.Close()
	if s.interval <= 0 {
		zap.L().Warn("reconcile worker disabled", zap.Duration("interval", s.interval))
		return
	}
	zap.L().Info("reconcile worker started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("reconcile worker stopped")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	donations, err := s.repo.FindStalePending(ctx, s.now().Add(-s.after), batchLimit)
	if err != nil {
		zap.L().Error("failed to fetch pending donations", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, donation := range donations {
		donation := donation
		key := donation.ID.String()

		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(key)
				return s.handleDonation(ctx, &donation)
			})
			if err != nil {
				s.inFlight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling pending donations", zap.Error(err))
	}
}

func (s *Service) handleDonation(ctx context.Context, donation *domain.Donation) error {
	var order *gateway.Order
	err := s.withRetry(ctx, donation.OrderID, func() (err error) {
		order, err = s.gateway.FetchOrder(ctx, donation.OrderID)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch order %s: %w", donation.OrderID, err)
	}

	if order.Status == gateway.OrderStatusPaid {
		return s.settlePaid(ctx, donation)
	}

	age := s.now().Sub(donation.CreatedAt)
	if age < s.pendingTTL {
		zap.L().Debug("donation still pending",
			zap.String("donation_id", donation.ID.String()),
			zap.String("order_status", order.Status),
		)
		return nil
	}
	if _, err := s.payments.Fail(ctx, donation); err != nil {
		return fmt.Errorf("fail donation %s: %w", donation.ID, err)
	}
	return nil
}

func (s *Service) settlePaid(ctx context.Context, donation *domain.Donation) error {
	var payments []gateway.Payment
	err := s.withRetry(ctx, donation.OrderID, func() (err error) {
		payments, err = s.gateway.FetchOrderPayments(ctx, donation.OrderID)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch payments for order %s: %w", donation.OrderID, err)
	}

	for _, p := range payments {
		if p.Status != gateway.PaymentStatusCaptured {
			continue
		}
		res, err := s.payments.Complete(ctx, donation, p.ID)
		if err != nil {
			return fmt.Errorf("complete donation %s: %w", donation.ID, err)
		}
		zap.L().Info("donation reconciled",
			zap.String("donation_id", donation.ID.String()),
			zap.String("payment_id", p.ID),
			zap.Bool("credited", res.Credited),
		)
		return nil
	}

	zap.L().Warn("paid order without captured payment", zap.String("order_id", donation.OrderID))
	return nil
}

// withRetry retries transport failures and rate limits. Gateway rejections
// are returned at once.
func (s *Service) withRetry(ctx context.Context, orderID string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		wait := retryInterval * time.Duration(attempt)
		var rateLimited *gateway.RateLimitError
		switch {
		case errors.As(err, &rateLimited):
			if rateLimited.RetryAfter > 0 {
				wait = rateLimited.RetryAfter
			}
			zap.L().Warn("rate limit detected, retrying",
				zap.String("order_id", orderID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", wait),
			)
		case errors.Is(err, gateway.ErrUnavailable):
			zap.L().Warn("gateway unavailable, retrying", zap.String("order_id", orderID), zap.Int("attempt", attempt))
		default:
			return err
		}

		if attempt == maxRetries {
			break
		}
		if serr := s.sleep(ctx, wait); serr != nil {
			return serr
		}
	}
	return fmt.Errorf("gave up after %d retries: %w", maxRetries, err)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
