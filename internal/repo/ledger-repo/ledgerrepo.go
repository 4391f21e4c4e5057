package ledgerrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

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

// Increment adds amount to the running total and returns the new total. The
// row is created on first use.
func (r *Repository) Increment(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
        INSERT INTO funds_ledger (id, total_raised, updated_at)
        VALUES (1, $1, NOW())
        ON CONFLICT (id) DO UPDATE
        SET total_raised = funds_ledger.total_raised + EXCLUDED.total_raised, updated_at = NOW()
        RETURNING total_raised
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, amount).Scan(&total); err != nil {
		zap.L().Error("failed to increment funds ledger", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) Total(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE((SELECT total_raised FROM funds_ledger WHERE id = 1), 0)`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("failed to read funds ledger", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
