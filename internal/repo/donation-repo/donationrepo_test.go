package donationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/donations/internal/domain"
)

var donationColumns = []string{
	"id", "name", "email", "phone", "address", "country", "state", "city", "postal_code",
	"amount", "currency", "order_id", "payment_id", "payment_status", "payment_date", "receipt", "client_ip",
	"donor_donation_count", "donor_total_donated", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func sampleDonation(now time.Time) *domain.Donation {
	return &domain.Donation{
		ID:                uuid.MustParse("5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"),
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		Phone:             "+919800000000",
		Country:           "India",
		State:             "Karnataka",
		City:              "Bengaluru",
		PostalCode:        "560001",
		Amount:            decimal.RequireFromString("500.00"),
		Currency:          "INR",
		OrderID:           "order_Abc123",
		PaymentStatus:     domain.PaymentPending,
		Receipt:           "17000000000001234",
		ClientIP:          "10.0.0.1",
		DonorTotalDonated: decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func row(d *domain.Donation) []any {
	var paymentID, paymentDate any
	if d.PaymentID != nil {
		paymentID = d.PaymentID
	}
	if d.PaymentDate != nil {
		paymentDate = d.PaymentDate
	}
	return []any{
		d.ID, d.Name, d.Email, d.Phone, d.Address, d.Country, d.State, d.City, d.PostalCode,
		d.Amount, d.Currency, d.OrderID, paymentID, d.PaymentStatus, paymentDate, d.Receipt, d.ClientIP,
		d.DonorDonationCount, d.DonorTotalDonated, d.CreatedAt, d.UpdatedAt,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	d := sampleDonation(time.Now())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO donations")).
		WithArgs(d.ID, d.Name, d.Email, d.Phone, d.Address, d.Country, d.State, d.City, d.PostalCode,
			d.Amount, d.Currency, d.OrderID, d.PaymentStatus, d.Receipt, d.ClientIP, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), d))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO donations")).
		WillReturnError(errors.New("duplicate key"))
	assert.Error(t, repo.Create(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	d := sampleDonation(now)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Donation
	}{
		{
			name: "Donation exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE id = $1")).
					WithArgs(d.ID).
					WillReturnRows(pgxmock.NewRows(donationColumns).AddRow(row(d)...))
			},
			result: d,
		},
		{
			name: "Donation does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE id = $1")).
					WithArgs(d.ID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE id = $1")).
					WithArgs(d.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), d.ID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByReceipt(t *testing.T) {
	repo, mock := NewMock(t)
	d := sampleDonation(time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE receipt = $1")).
		WithArgs(d.Receipt).
		WillReturnRows(pgxmock.NewRows(donationColumns).AddRow(row(d)...))
	got, err := repo.FindByReceipt(context.Background(), d.Receipt)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE receipt = $1")).
		WithArgs("0").
		WillReturnError(pgx.ErrNoRows)
	got, err = repo.FindByReceipt(context.Background(), "0")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	completed := sampleDonation(now)
	paymentID := "pay_Xyz789"
	completed.PaymentID = &paymentID
	completed.PaymentDate = &now
	completed.PaymentStatus = domain.PaymentCompleted

	query := regexp.QuoteMeta("UPDATE donations SET payment_id = $2, payment_status = 'completed', payment_date = $3, updated_at = $3 WHERE id = $1 AND payment_status = 'pending' RETURNING")

	t.Run("Pending donation transitions", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(completed.ID, paymentID, now).
			WillReturnRows(pgxmock.NewRows(donationColumns).AddRow(row(completed)...))

		got, err := repo.MarkCompleted(context.Background(), completed.ID, paymentID, now)
		require.NoError(t, err)
		assert.Equal(t, completed, got)
	})

	t.Run("Already completed yields nil", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(completed.ID, paymentID, now).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.MarkCompleted(context.Background(), completed.ID, paymentID, now)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkFailed(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET payment_status = 'failed'")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkFailed(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("SET payment_status = 'failed'")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkFailed(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_RefreshDonorTotals(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	total := decimal.RequireFromString("1500.00")

	mock.ExpectQuery(regexp.QuoteMeta("RETURNING d.donor_donation_count, d.donor_total_donated")).
		WithArgs(id, "asha@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"donor_donation_count", "donor_total_donated"}).AddRow(3, total))

	count, got, err := repo.RefreshDonorTotals(context.Background(), id, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, total.Equal(got))
}

func TestRepository_CompletedSummaryAndRecent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(ROUND(AVG(amount), 2), 0)")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(int64(2), decimal.RequireFromString("750.00")))
	count, avg, err := repo.CompletedSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, "750", avg.String())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY payment_date DESC LIMIT $1")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"name", "amount", "payment_date"}).
			AddRow("Asha Rao", decimal.RequireFromString("1000.00"), now).
			AddRow("Ravi K", decimal.RequireFromString("500.00"), now.Add(-time.Hour)))
	recent, err := repo.RecentCompleted(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Asha Rao", recent[0].Name)
	assert.Equal(t, now, recent[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindStalePending(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	d := sampleDonation(now.Add(-time.Hour))
	before := now.Add(-15 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_status = 'pending' AND created_at < $1 ORDER BY created_at ASC LIMIT $2")).
		WithArgs(before, 100).
		WillReturnRows(pgxmock.NewRows(donationColumns).AddRow(row(d)...))

	got, err := repo.FindStalePending(context.Background(), before, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.Donation{*d}, got)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	d := sampleDonation(time.Now())

	t.Run("Search and status filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM donations WHERE (name ILIKE $1 OR email ILIKE $1 OR order_id ILIKE $1) AND payment_status = $2")).
			WithArgs(`%100\%%`, domain.PaymentPending).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $3 OFFSET $4")).
			WithArgs(`%100\%%`, domain.PaymentPending, 20, 20).
			WillReturnRows(pgxmock.NewRows(donationColumns).AddRow(row(d)...))

		page, err := repo.List(context.Background(), domain.DonationFilter{
			Search: "100%",
			Status: domain.PaymentPending,
			Page:   2,
			Limit:  20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Items, 1)
	})

	t.Run("No filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM donations")).
			WithArgs().
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
			WithArgs(20, 0).
			WillReturnRows(pgxmock.NewRows(donationColumns))

		page, err := repo.List(context.Background(), domain.DonationFilter{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("Count fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM donations")).
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), domain.DonationFilter{Page: 1, Limit: 20})
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM donations WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	ok, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM donations WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	ok, err = repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}
