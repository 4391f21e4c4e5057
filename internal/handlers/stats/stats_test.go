package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
)

func NewMock(t *testing.T) (*StatsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestFundStatsHandler(t *testing.T) {
	handler, service := NewMock(t)
	paid := time.Date(2026, 1, 15, 10, 5, 0, 0, time.UTC)

	stats := &domain.FundStats{
		TotalRaised:     decimal.RequireFromString("500"),
		TotalDonations:  1,
		AverageDonation: decimal.RequireFromString("500.00"),
		RecentDonations: []domain.RecentDonation{
			{Name: "Asha Rao", Amount: decimal.RequireFromString("500"), Date: paid},
		},
	}

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.FundStatsResponseDTO
	}{
		{
			name: "Default limit",
			prepareMock: func() {
				service.EXPECT().FundStats(gomock.Any(), 5).Return(stats, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.FundStatsResponseDTO{
				Success:         true,
				TotalRaised:     500,
				TotalDonations:  1,
				AverageDonation: 500,
				RecentDonations: []dto.RecentDonationDTO{
					{Name: "Asha Rao", Amount: 500, Date: "2026-01-15T10:05:00Z"},
				},
			},
		},
		{
			name:  "Explicit limit is passed through",
			query: "?limit=200",
			prepareMock: func() {
				service.EXPECT().FundStats(gomock.Any(), 200).Return(&domain.FundStats{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.FundStatsResponseDTO{
				Success:         true,
				RecentDonations: []dto.RecentDonationDTO{},
			},
		},
		{
			name:          "Invalid limit",
			query:         "?limit=ten",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().FundStats(gomock.Any(), 5).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/fund-stats"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.FundStats(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != nil {
				var body dto.FundStatsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
