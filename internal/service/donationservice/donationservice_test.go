package donationservice

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
	"github.com/GlebRadaev/donations/pkg/audit"
	"github.com/GlebRadaev/donations/pkg/money"
	"github.com/GlebRadaev/donations/pkg/validate"
)

type mocks struct {
	repo    *MockRepo
	gateway *MockGateway
	cache   *MockStatsCache
	audit   *audit.MockLogger
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		gateway: NewMockGateway(ctrl),
		cache:   NewMockStatsCache(ctrl),
		audit:   audit.NewMockLogger(ctrl),
	}
	service := New(m.repo, m.gateway, m.cache, m.audit)
	service.now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }
	return service, m
}

func request(amount string) domain.DonationRequest {
	return domain.DonationRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+919800000000",
		Country:    "India",
		State:      "Karnataka",
		City:       "Bengaluru",
		PostalCode: "560001",
		Amount:     decimal.RequireFromString(amount),
		Currency:   "INR",
		ClientIP:   "10.0.0.1",
	}
}

func TestCreateDonation(t *testing.T) {
	t.Run("Order created then donation stored", func(t *testing.T) {
		service, m := NewMock(t)

		var sentReceipt string
		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
				assert.Equal(t, int64(50000), req.Amount)
				assert.Equal(t, "INR", req.Currency)
				assert.Equal(t, 1, req.PaymentCapture)
				assert.True(t, validate.IsReceipt(req.Receipt))
				sentReceipt = req.Receipt
				return &gateway.Order{ID: "order_Abc123", Amount: req.Amount, Currency: req.Currency}, nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.Donation) error {
				assert.Equal(t, "order_Abc123", d.OrderID)
				assert.Equal(t, domain.PaymentPending, d.PaymentStatus)
				assert.Equal(t, sentReceipt, d.Receipt)
				assert.Nil(t, d.PaymentID)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})

		donation, err := service.CreateDonation(context.Background(), request("500.00"))
		require.NoError(t, err)
		assert.Equal(t, "order_Abc123", donation.OrderID)
		assert.Equal(t, "10.0.0.1", donation.ClientIP)
		assert.Equal(t, "500", donation.Amount.String())
	})

	t.Run("Gateway refusal stores nothing", func(t *testing.T) {
		service, m := NewMock(t)
		gwErr := &gateway.Error{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "amount too low"}

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, gwErr)

		donation, err := service.CreateDonation(context.Background(), request("500.00"))
		assert.Nil(t, donation)
		assert.ErrorAs(t, err, &gwErr)
	})

	t.Run("Gateway unavailable", func(t *testing.T) {
		service, m := NewMock(t)

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrUnavailable)

		_, err := service.CreateDonation(context.Background(), request("500.00"))
		assert.ErrorIs(t, err, gateway.ErrUnavailable)
	})

	t.Run("Amount finer than currency unit", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.CreateDonation(context.Background(), request("10.005"))
		assert.ErrorIs(t, err, money.ErrTooPrecise)
	})

	t.Run("Amount too large never reaches gateway", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.CreateDonation(context.Background(), request("1e17"))
		assert.ErrorIs(t, err, money.ErrTooLarge)
	})

	t.Run("Repository error", func(t *testing.T) {
		service, m := NewMock(t)

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&gateway.Order{ID: "order_1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := service.CreateDonation(context.Background(), request("500.00"))
		assert.EqualError(t, err, "database error")
	})
}

func TestGetDonation(t *testing.T) {
	service, m := NewMock(t)
	id := uuid.New()

	m.repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Donation{ID: id}, nil)
	d, err := service.GetDonation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)

	m.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
	_, err = service.GetDonation(context.Background(), id)
	assert.ErrorIs(t, err, ErrDonationNotFound)
}

func TestGetReceipt(t *testing.T) {
	receipt, err := validate.NewReceiptNumber(time.Now())
	require.NoError(t, err)

	tests := []struct {
		name        string
		receipt     string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name:        "Fails checksum",
			receipt:     "12345",
			prepareMock: func(m mocks) {},
			expectedErr: ErrInvalidReceipt,
		},
		{
			name:    "Unknown receipt",
			receipt: receipt,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByReceipt(gomock.Any(), receipt).Return(nil, nil)
			},
			expectedErr: ErrDonationNotFound,
		},
		{
			name:    "Pending donation has no receipt yet",
			receipt: receipt,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByReceipt(gomock.Any(), receipt).
					Return(&domain.Donation{Receipt: receipt, PaymentStatus: domain.PaymentPending}, nil)
			},
			expectedErr: ErrDonationNotFound,
		},
		{
			name:    "Completed donation",
			receipt: receipt,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByReceipt(gomock.Any(), receipt).
					Return(&domain.Donation{Receipt: receipt, PaymentStatus: domain.PaymentCompleted}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			d, err := service.GetReceipt(context.Background(), tt.receipt)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, receipt, d.Receipt)
		})
	}
}

func TestListDonations(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().
		List(gomock.Any(), domain.DonationFilter{Search: "asha", Page: 1, Limit: MaxPageLimit}).
		Return(&domain.DonationPage{Page: 1, Limit: MaxPageLimit}, nil)
	page, err := service.ListDonations(context.Background(), domain.DonationFilter{Search: "asha", Page: 0, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxPageLimit, page.Limit)

	m.repo.EXPECT().
		List(gomock.Any(), domain.DonationFilter{Page: 3, Limit: DefaultPageLimit}).
		Return(nil, errors.New("database error"))
	_, err = service.ListDonations(context.Background(), domain.DonationFilter{Page: 3})
	assert.Error(t, err)
}

func TestDeleteDonation(t *testing.T) {
	id := uuid.New()

	t.Run("Deleted and stats cache cleared", func(t *testing.T) {
		service, m := NewMock(t)

		gomock.InOrder(
			m.repo.EXPECT().Delete(gomock.Any(), id).Return(true, nil),
			m.audit.EXPECT().AdminAction(audit.EventAdminDeletion, "admin-1", id.String()),
			m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		)
		assert.NoError(t, service.DeleteDonation(context.Background(), "admin-1", id))
	})

	t.Run("Cache failure does not fail the deletion", func(t *testing.T) {
		service, m := NewMock(t)

		m.repo.EXPECT().Delete(gomock.Any(), id).Return(true, nil)
		m.audit.EXPECT().AdminAction(audit.EventAdminDeletion, "admin-1", id.String())
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
		assert.NoError(t, service.DeleteDonation(context.Background(), "admin-1", id))
	})

	t.Run("Not found leaves cache alone", func(t *testing.T) {
		service, m := NewMock(t)

		m.repo.EXPECT().Delete(gomock.Any(), id).Return(false, nil)
		assert.ErrorIs(t, service.DeleteDonation(context.Background(), "admin-1", id), ErrDonationNotFound)
	})
}

func TestGatewayKey(t *testing.T) {
	service, m := NewMock(t)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")
	assert.Equal(t, "rzp_test_key", service.GatewayKey())
}
