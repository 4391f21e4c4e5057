package entryrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger entry. The primary key on donation_id rejects a
// second entry for the same donation.
func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (donation_id, payment_id, amount, currency, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, entry.DonationID, entry.PaymentID, entry.Amount, entry.Currency, entry.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Summary(ctx context.Context) (decimal.Decimal, int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM ledger_entries`
	var (
		total decimal.Decimal
		count int64
	)
	if err := r.db.QueryRow(ctx, query).Scan(&total, &count); err != nil {
		zap.L().Error("failed to summarize ledger entries", zap.Error(err))
		return decimal.Zero, 0, err
	}
	return total, count, nil
}
