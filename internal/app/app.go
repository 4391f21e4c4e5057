package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/cache"
	"github.com/GlebRadaev/donations/internal/config"
	"github.com/GlebRadaev/donations/internal/gateway"
	"github.com/GlebRadaev/donations/internal/handlers"
	"github.com/GlebRadaev/donations/internal/pg"
	"github.com/GlebRadaev/donations/internal/reconcile"
	"github.com/GlebRadaev/donations/internal/repo"
	"github.com/GlebRadaev/donations/internal/service"
	"github.com/GlebRadaev/donations/pkg/audit"
	"github.com/GlebRadaev/donations/pkg/clients"
	"github.com/GlebRadaev/donations/pkg/logger"
	"github.com/GlebRadaev/donations/pkg/utils"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	reconcile *reconcile.Service

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	utils.ExposeInternalErrors(cfg.IsDevelopment())
	if err := cfg.Validate(); err != nil {
		zap.L().Error("refusing to start: ", zap.Error(err))
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.GatewayKeyID == "" || cfg.GatewayKeySecret == "" {
		zap.L().Warn("payment gateway credentials are not set")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, func() error { pool.Close(); return nil })
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	statsCache, err := a.buildCache(ctx, cfg)
	if err != nil {
		zap.L().Error("redis connection failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	gw := gateway.New(cfg.GatewayURL, cfg.GatewayKeyID, cfg.GatewayKeySecret, clients.NewHTTPClient())

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, gw, statsCache, audit.NewStderr())
	a.api = handlers.New(cfg, a.srv)
	a.reconcile = reconcile.New(cfg, a.repo.DonationRepo, gw, a.srv.PaymentService)

	if err := a.srv.AuthService.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		zap.L().Error("ensure admin failed: ", zap.Error(err))
		return fmt.Errorf("can't ensure admin: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconcileWorker(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// buildCache returns a Redis backed stats cache, or a no-op one when no
// address is configured.
func (a *Application) buildCache(ctx context.Context, cfg *config.Config) (service.StatsCache, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("redis address not set, fund stats are not cached")
		return cache.Nop{}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	return cache.NewStatsCache(client, cfg.StatsCacheTTL), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconcileWorker(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.reconcile.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("close failed", zap.Error(err))
		}
	}

	return appErr
}
