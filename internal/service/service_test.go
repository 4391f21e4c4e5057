package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/cache"
	"github.com/GlebRadaev/donations/internal/config"
	"github.com/GlebRadaev/donations/internal/pg"
	"github.com/GlebRadaev/donations/internal/repo"
	"github.com/GlebRadaev/donations/internal/service/authservice"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/internal/service/paymentservice"
	"github.com/GlebRadaev/donations/internal/service/statsservice"
	"github.com/GlebRadaev/donations/pkg/audit"
	pkgauth "github.com/GlebRadaev/donations/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	gw := donationservice.NewMockGateway(ctrl)
	cfg := &config.Config{JWTSecret: "secret", GatewayKeySecret: "gateway-secret"}

	services := New(cfg, repos, gw, cache.Nop{}, audit.Nop{})

	assert.IsType(t, &donationservice.Service{}, services.DonationService)
	assert.IsType(t, &paymentservice.Service{}, services.PaymentService)
	assert.IsType(t, &statsservice.Service{}, services.StatsService)
	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &pkgauth.JWTService{}, services.TokenValidator)
}
