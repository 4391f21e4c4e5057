package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/gateway"
	"github.com/GlebRadaev/donations/internal/pg"
	"github.com/GlebRadaev/donations/pkg/audit"
)

const secret = "rzp_secret"

var paidAt = time.Date(2026, 1, 15, 10, 5, 0, 0, time.UTC)

type mocks struct {
	donations *MockDonationRepo
	ledger    *MockLedgerRepo
	entries   *MockEntryRepo
	tx        *pg.MockTXManager
	cache     *MockStatsCache
	audit     *audit.MockLogger
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		donations: NewMockDonationRepo(ctrl),
		ledger:    NewMockLedgerRepo(ctrl),
		entries:   NewMockEntryRepo(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
		cache:     NewMockStatsCache(ctrl),
		audit:     audit.NewMockLogger(ctrl),
	}
	service := New(secret, m.donations, m.ledger, m.entries, m.tx, m.cache, m.audit)
	service.now = func() time.Time { return paidAt }
	return service, m
}

func expectTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func pendingDonation() *domain.Donation {
	return &domain.Donation{
		ID:            uuid.MustParse("5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"),
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Amount:        decimal.RequireFromString("500.00"),
		Currency:      "INR",
		OrderID:       "order_Abc123",
		PaymentStatus: domain.PaymentPending,
		Receipt:       "17000000000001234",
	}
}

func completedCopy(d *domain.Donation, paymentID string) *domain.Donation {
	c := *d
	c.PaymentID = &paymentID
	c.PaymentStatus = domain.PaymentCompleted
	date := paidAt
	c.PaymentDate = &date
	return &c
}

func proofFor(d *domain.Donation, paymentID string) domain.PaymentProof {
	return domain.PaymentProof{
		DonationID: d.ID,
		OrderID:    d.OrderID,
		PaymentID:  paymentID,
		Signature:  gateway.Sign(secret, d.OrderID, paymentID),
		ClientIP:   "10.0.0.1",
	}
}

func TestVerify_CreditsPendingDonation(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()
	completed := completedCopy(d, "pay_1")

	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
	expectTx(m)
	m.donations.EXPECT().MarkCompleted(gomock.Any(), d.ID, "pay_1", paidAt).Return(completed, nil)
	m.entries.EXPECT().Create(gomock.Any(), &domain.LedgerEntry{
		DonationID: d.ID,
		PaymentID:  "pay_1",
		Amount:     d.Amount,
		Currency:   "INR",
		CreatedAt:  paidAt,
	}).Return(nil)
	m.ledger.EXPECT().Increment(gomock.Any(), d.Amount).Return(decimal.RequireFromString("1500.00"), nil)
	m.donations.EXPECT().RefreshDonorTotals(gomock.Any(), d.ID, "asha@example.com").
		Return(2, decimal.RequireFromString("1000.00"), nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	res, err := service.Verify(context.Background(), proofFor(d, "pay_1"))
	require.NoError(t, err)
	assert.True(t, res.Credited)
	assert.Equal(t, "1500", res.TotalRaised.String())
	assert.Equal(t, domain.PaymentCompleted, res.Donation.PaymentStatus)
	assert.Equal(t, 2, res.Donation.DonorDonationCount)
	assert.Equal(t, "1000", res.Donation.DonorTotalDonated.String())
}

func TestVerify_RepeatedCallDoesNotCreditTwice(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()
	completed := completedCopy(d, "pay_1")

	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
	expectTx(m)
	m.donations.EXPECT().MarkCompleted(gomock.Any(), d.ID, "pay_1", paidAt).Return(nil, nil)
	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(completed, nil)
	m.ledger.EXPECT().Total(gomock.Any()).Return(decimal.RequireFromString("500.00"), nil)

	res, err := service.Verify(context.Background(), proofFor(d, "pay_1"))
	require.NoError(t, err)
	assert.False(t, res.Credited)
	assert.Equal(t, "500", res.TotalRaised.String())
	assert.Equal(t, completed, res.Donation)
}

func TestVerify_Rejections(t *testing.T) {
	otherAmount := decimal.RequireFromString("1.00")

	tests := []struct {
		name        string
		proof       func(d *domain.Donation) domain.PaymentProof
		event       string
		expectedErr error
	}{
		{
			name: "Signature mismatch",
			proof: func(d *domain.Donation) domain.PaymentProof {
				p := proofFor(d, "pay_1")
				p.Signature = gateway.Sign("wrong", d.OrderID, "pay_1")
				return p
			},
			event:       audit.EventSignatureMismatch,
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "Valid signature for another order",
			proof: func(d *domain.Donation) domain.PaymentProof {
				p := proofFor(d, "pay_1")
				p.OrderID = "order_Other"
				p.Signature = gateway.Sign(secret, "order_Other", "pay_1")
				return p
			},
			event:       audit.EventOrderMismatch,
			expectedErr: ErrOrderMismatch,
		},
		{
			name: "Amount differs from stored",
			proof: func(d *domain.Donation) domain.PaymentProof {
				p := proofFor(d, "pay_1")
				p.Amount = &otherAmount
				return p
			},
			event:       audit.EventAmountMismatch,
			expectedErr: ErrAmountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			d := pendingDonation()
			proof := tt.proof(d)

			m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
			m.audit.EXPECT().PaymentRejected(tt.event, d.ID.String(), proof.OrderID, "pay_1", "10.0.0.1")

			res, err := service.Verify(context.Background(), proof)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestVerify_MatchingAmountAccepted(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()
	same := decimal.RequireFromString("500")
	proof := proofFor(d, "pay_1")
	proof.Amount = &same

	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
	expectTx(m)
	m.donations.EXPECT().MarkCompleted(gomock.Any(), d.ID, "pay_1", paidAt).Return(completedCopy(d, "pay_1"), nil)
	m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().Increment(gomock.Any(), d.Amount).Return(d.Amount, nil)
	m.donations.EXPECT().RefreshDonorTotals(gomock.Any(), d.ID, d.Email).Return(1, d.Amount, nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	res, err := service.Verify(context.Background(), proof)
	require.NoError(t, err)
	assert.True(t, res.Credited)
}

func TestVerify_UnknownDonation(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()

	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(nil, nil)

	_, err := service.Verify(context.Background(), proofFor(d, "pay_1"))
	assert.ErrorIs(t, err, ErrDonationNotFound)
}

func TestVerify_FailedDonationIsTerminal(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()
	d.PaymentStatus = domain.PaymentFailed

	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)

	_, err := service.Verify(context.Background(), proofFor(d, "pay_1"))
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestComplete_LostRaceAgainstFailure(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()
	failed := *d
	failed.PaymentStatus = domain.PaymentFailed

	expectTx(m)
	m.donations.EXPECT().MarkCompleted(gomock.Any(), d.ID, "pay_1", paidAt).Return(nil, nil)
	m.donations.EXPECT().FindByID(gomock.Any(), d.ID).Return(&failed, nil)

	_, err := service.Complete(context.Background(), d, "pay_1")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestComplete_LedgerFailureRollsBack(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()

	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			err := fn(ctx)
			assert.Error(t, err)
			return err
		})
	m.donations.EXPECT().MarkCompleted(gomock.Any(), d.ID, "pay_1", paidAt).Return(completedCopy(d, "pay_1"), nil)
	m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().Increment(gomock.Any(), d.Amount).Return(decimal.Zero, errors.New("database error"))

	res, err := service.Complete(context.Background(), d, "pay_1")
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "increment ledger")
}

func TestFail(t *testing.T) {
	service, m := NewMock(t)
	d := pendingDonation()

	m.donations.EXPECT().MarkFailed(gomock.Any(), d.ID).Return(true, nil)
	ok, err := service.Fail(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, ok)

	m.donations.EXPECT().MarkFailed(gomock.Any(), d.ID).Return(false, nil)
	ok, err = service.Fail(context.Background(), d)
	require.NoError(t, err)
	assert.False(t, ok)
}
