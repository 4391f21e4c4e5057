package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/donations/docs"
	"github.com/GlebRadaev/donations/internal/config"
	adminhandlers "github.com/GlebRadaev/donations/internal/handlers/admin"
	donationhandlers "github.com/GlebRadaev/donations/internal/handlers/donations"
	paymenthandlers "github.com/GlebRadaev/donations/internal/handlers/payments"
	statshandlers "github.com/GlebRadaev/donations/internal/handlers/stats"
	"github.com/GlebRadaev/donations/internal/service"
	"github.com/GlebRadaev/donations/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	FundStats(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler
	StatsHandler    StatsHandler
	AdminHandler    AdminHandler

	tokenValidator auth.TokenValidator
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		DonationHandler: donationhandlers.New(s.DonationService, cfg.CallbackURL),
		PaymentHandler:  paymenthandlers.New(s.PaymentService, cfg.PublicURL),
		StatsHandler:    statshandlers.New(s.StatsService),
		AdminHandler:    adminhandlers.New(s.AuthService, s.DonationService, s.StatsService),
		tokenValidator:  s.TokenValidator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/donate", h.DonationHandler.Donate)
	r.Post("/verify-payment", h.PaymentHandler.Verify)
	r.Get("/donations/{id}/status", h.DonationHandler.Status)
	r.Get("/receipts/{receipt}", h.DonationHandler.Receipt)
	r.Get("/fund-stats", h.StatsHandler.FundStats)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.AdminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokenValidator))
			r.Get("/donations", h.AdminHandler.List)
			r.Delete("/donations/{id}", h.AdminHandler.Delete)
			r.Get("/ledger", h.AdminHandler.Ledger)
		})
	})

	return r
}
