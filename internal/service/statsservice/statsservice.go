package statsservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/donations/internal/domain"
)

//go:generate mockgen -source=statsservice.go -destination=mock_statsservice.go -package=statsservice
type DonationRepo interface {
	CompletedSummary(ctx context.Context) (int64, decimal.Decimal, error)
	RecentCompleted(ctx context.Context, limit int) ([]domain.RecentDonation, error)
}

type LedgerRepo interface {
	Total(ctx context.Context) (decimal.Decimal, error)
}

type EntryRepo interface {
	Summary(ctx context.Context) (decimal.Decimal, int64, error)
}

// Cache hands out a generation with every lookup. Set must be given the
// generation observed before the stats were computed.
type Cache interface {
	Get(ctx context.Context, limit int) (*domain.FundStats, int64, bool, error)
	Set(ctx context.Context, generation int64, limit int, stats *domain.FundStats) error
}

const (
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

type Service struct {
	donations DonationRepo
	ledger    LedgerRepo
	entries   EntryRepo
	cache     Cache
}

func New(donations DonationRepo, ledger LedgerRepo, entries EntryRepo, cache Cache) *Service {
	return &Service{
		donations: donations,
		ledger:    ledger,
		entries:   entries,
		cache:     cache,
	}
}

// ClampLimit keeps the recent donations count within [1, MaxRecentLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}

func (s *Service) FundStats(ctx context.Context, limit int) (*domain.FundStats, error) {
	limit = ClampLimit(limit)

	cached, generation, ok, err := s.cache.Get(ctx, limit)
	cacheable := err == nil
	if err != nil {
		zap.L().Warn("fund stats cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	stats := &domain.FundStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.ledger.Total(gctx)
		if err != nil {
			return err
		}
		stats.TotalRaised = total
		return nil
	})
	g.Go(func() error {
		count, avg, err := s.donations.CompletedSummary(gctx)
		if err != nil {
			return err
		}
		stats.TotalDonations = count
		stats.AverageDonation = avg.Round(2)
		return nil
	})
	g.Go(func() error {
		recent, err := s.donations.RecentCompleted(gctx, limit)
		if err != nil {
			return err
		}
		stats.RecentDonations = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute fund stats", zap.Error(err))
		return nil, err
	}

	if !cacheable {
		return stats, nil
	}
	if err := s.cache.Set(ctx, generation, limit, stats); err != nil {
		zap.L().Warn("fund stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// LedgerAudit compares the running total with the sum of ledger entries.
func (s *Service) LedgerAudit(ctx context.Context) (*domain.LedgerAudit, error) {
	audit := &domain.LedgerAudit{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.ledger.Total(gctx)
		audit.TotalRaised = total
		return err
	})
	g.Go(func() error {
		sum, count, err := s.entries.Summary(gctx)
		audit.EntriesTotal = sum
		audit.Entries = count
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to audit ledger", zap.Error(err))
		return nil, err
	}
	if !audit.Consistent() {
		zap.L().Error("funds ledger drift detected",
			zap.String("total_raised", audit.TotalRaised.String()),
			zap.String("entries_total", audit.EntriesTotal.String()),
		)
	}
	return audit, nil
}
