package donationrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/pg"
)

const columns = `id, name, email, phone, address, country, state, city, postal_code,
        amount, currency, order_id, payment_id, payment_status, payment_date, receipt, client_ip,
        donor_donation_count, donor_total_donated, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.ID, &d.Name, &d.Email, &d.Phone, &d.Address, &d.Country, &d.State, &d.City, &d.PostalCode,
		&d.Amount, &d.Currency, &d.OrderID, &d.PaymentID, &d.PaymentStatus, &d.PaymentDate, &d.Receipt, &d.ClientIP,
		&d.DonorDonationCount, &d.DonorTotalDonated, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.Donation) error {
	query := `
        INSERT INTO donations (id, name, email, phone, address, country, state, city, postal_code,
            amount, currency, order_id, payment_status, receipt, client_ip, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Email, d.Phone, d.Address, d.Country, d.State, d.City, d.PostalCode,
		d.Amount, d.Currency, d.OrderID, d.PaymentStatus, d.Receipt, d.ClientIP, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	query := `SELECT ` + columns + ` FROM donations WHERE id = $1`
	d, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByReceipt(ctx context.Context, receipt string) (*domain.Donation, error) {
	query := `SELECT ` + columns + ` FROM donations WHERE receipt = $1`
	d, err := scan(r.db.QueryRow(ctx, query, receipt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation by receipt", zap.Error(err))
		return nil, err
	}
	return d, nil
}

// MarkCompleted moves a pending donation to completed. It returns nil when the
// donation was not pending, so concurrent callers see exactly one transition.
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID, paymentID string, paidAt time.Time) (*domain.Donation, error) {
	query := `
        UPDATE donations
        SET payment_id = $2, payment_status = 'completed', payment_date = $3, updated_at = $3
        WHERE id = $1 AND payment_status = 'pending'
        RETURNING ` + columns
	d, err := scan(r.db.QueryRow(ctx, query, id, paymentID, paidAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't complete donation", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE donations
        SET payment_status = 'failed', updated_at = NOW()
        WHERE id = $1 AND payment_status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't fail donation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RefreshDonorTotals stores on the donation the donor's completed count and
// lifetime total, keyed by email.
func (r *Repository) RefreshDonorTotals(ctx context.Context, id uuid.UUID, email string) (int, decimal.Decimal, error) {
	query := `
        UPDATE donations d
        SET donor_donation_count = t.cnt, donor_total_donated = t.total
        FROM (
            SELECT COUNT(*) AS cnt, COALESCE(SUM(amount), 0) AS total
            FROM donations
            WHERE email = $2 AND payment_status = 'completed'
        ) t
        WHERE d.id = $1
        RETURNING d.donor_donation_count, d.donor_total_donated
    `
	var (
		count int
		total decimal.Decimal
	)
	if err := r.db.QueryRow(ctx, query, id, email).Scan(&count, &total); err != nil {
		zap.L().Error("can't refresh donor totals", zap.Error(err))
		return 0, decimal.Zero, err
	}
	return count, total, nil
}

func (r *Repository) FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Donation, error) {
	query := `
        SELECT ` + columns + `
        FROM donations
        WHERE payment_status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.list(ctx, "can't get stale donations", query, before, limit)
}

func (r *Repository) CompletedSummary(ctx context.Context) (int64, decimal.Decimal, error) {
	query := `
        SELECT COUNT(*), COALESCE(ROUND(AVG(amount), 2), 0)
        FROM donations
        WHERE payment_status = 'completed'
    `
	var (
		count int64
		avg   decimal.Decimal
	)
	if err := r.db.QueryRow(ctx, query).Scan(&count, &avg); err != nil {
		zap.L().Error("can't summarize donations", zap.Error(err))
		return 0, decimal.Zero, err
	}
	return count, avg, nil
}

func (r *Repository) RecentCompleted(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	query := `
        SELECT name, amount, payment_date
        FROM donations
        WHERE payment_status = 'completed'
        ORDER BY payment_date DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	recent := make([]domain.RecentDonation, 0, limit)
	for rows.Next() {
		var rd domain.RecentDonation
		if err := rows.Scan(&rd.Name, &rd.Amount, &rd.Date); err != nil {
			zap.L().Error("can't scan recent donation", zap.Error(err))
			return nil, err
		}
		recent = append(recent, rd)
	}
	return recent, rows.Err()
}

func (r *Repository) List(ctx context.Context, filter domain.DonationFilter) (*domain.DonationPage, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR order_id ILIKE $%d)", n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	page := &domain.DonationPage{Page: filter.Page, Limit: filter.Limit}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM donations`+where, args...).Scan(&page.Total); err != nil {
		zap.L().Error("can't count donations", zap.Error(err))
		return nil, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s FROM donations%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		columns, where, len(args)+1, len(args)+2)
	items, err := r.list(ctx, "can't list donations", query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, err
	}
	page.Items = items
	return page, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete donation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) list(ctx context.Context, msg, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *d)
	}
	return donations, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
