package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/config"
	"github.com/GlebRadaev/donations/internal/service"
	pkgauth "github.com/GlebRadaev/donations/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		TokenValidator: pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(&config.Config{PublicURL: "http://localhost:8080"}, services)
	assert.NotNil(t, h.DonationHandler)
	assert.NotNil(t, h.PaymentHandler)
	assert.NotNil(t, h.StatsHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	donationHandler := NewMockDonationHandler(ctrl)
	paymentHandler := NewMockPaymentHandler(ctrl)
	statsHandler := NewMockStatsHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)
	validator := pkgauth.NewMockJWTServiceInterface(ctrl)

	donationHandler.EXPECT().Donate(gomock.Any(), gomock.Any()).AnyTimes()
	donationHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	donationHandler.EXPECT().Receipt(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()
	statsHandler.EXPECT().FundStats(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().Ledger(gomock.Any(), gomock.Any()).AnyTimes()
	validator.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{AdminID: "a-1"}, nil).AnyTimes()
	validator.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).AnyTimes()

	h := &Handlers{
		DonationHandler: donationHandler,
		PaymentHandler:  paymentHandler,
		StatsHandler:    statsHandler,
		AdminHandler:    adminHandler,
		tokenValidator:  validator,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/donate", "", http.StatusOK},
		{"POST", "/verify-payment", "", http.StatusOK},
		{"GET", "/donations/5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11/status", "", http.StatusOK},
		{"GET", "/receipts/17684712000001234", "", http.StatusOK},
		{"GET", "/fund-stats", "", http.StatusOK},
		{"POST", "/api/admin/login", "", http.StatusOK},
		{"GET", "/api/admin/donations", "", http.StatusUnauthorized},
		{"GET", "/api/admin/donations", "bad", http.StatusUnauthorized},
		{"GET", "/api/admin/donations", "good", http.StatusOK},
		{"DELETE", "/api/admin/donations/5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11", "", http.StatusUnauthorized},
		{"GET", "/api/admin/ledger", "good", http.StatusOK},
		{"GET", "/donate", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
