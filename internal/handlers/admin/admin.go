package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/pkg/auth"
	"github.com/GlebRadaev/donations/pkg/utils"
	"github.com/GlebRadaev/donations/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin
type AuthService interface {
	Authenticate(ctx context.Context, login, password, clientIP string) (*domain.Admin, error)
	GenerateToken(adminID uuid.UUID) (string, error)
}

type DonationService interface {
	ListDonations(ctx context.Context, filter domain.DonationFilter) (*domain.DonationPage, error)
	DeleteDonation(ctx context.Context, adminID string, id uuid.UUID) error
}

type LedgerService interface {
	LedgerAudit(ctx context.Context) (*domain.LedgerAudit, error)
}

type AdminHandler struct {
	authService     AuthService
	donationService DonationService
	ledgerService   LedgerService
}

func New(authService AuthService, donationService DonationService, ledgerService LedgerService) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		donationService: donationService,
		ledgerService:   ledgerService,
	}
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Authenticate an administrator and issue a bearer token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Admin credentials"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	admin, err := h.authService.Authenticate(r.Context(), req.Login, req.Password, r.RemoteAddr)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Success: true,
		Message: "Admin successfully authenticated",
		Token:   token,
	})
}

// List godoc
//
//	@Summary		List donations
//	@Description	Paginated donation records, optionally filtered by status and a search over name, email and order id.
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query	int		false	"Page number"		default(1)
//	@Param			limit	query	int		false	"Page size (max 100)"	default(20)
//	@Param			search	query	string	false	"Search text"
//	@Param			status	query	string	false	"Payment status"	Enums(pending, completed, failed, refunded)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid query"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/donations [get]
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DonationFilter{Search: q.Get("search")}

	var err error
	if filter.Page, err = intParam(q.Get("page")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	if status := q.Get("status"); status != "" {
		filter.Status = domain.PaymentStatus(status)
		if !filter.Status.Valid() {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	page, err := h.donationService.ListDonations(r.Context(), filter)
	if err != nil {
		utils.RespondWithInternalError(w, err)
		return
	}

	items := make([]dto.AdminDonationDTO, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toAdminDonation(&page.Items[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationListResponseDTO{
		Success: true,
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		Limit:   page.Limit,
	})
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func toAdminDonation(d *domain.Donation) dto.AdminDonationDTO {
	out := dto.AdminDonationDTO{
		ID:                 d.ID.String(),
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		Amount:             d.Amount.InexactFloat64(),
		Currency:           d.Currency,
		OrderID:            d.OrderID,
		PaymentStatus:      string(d.PaymentStatus),
		Receipt:            d.Receipt,
		DonorDonationCount: d.DonorDonationCount,
		DonorTotalDonated:  d.DonorTotalDonated.InexactFloat64(),
		CreatedAt:          d.CreatedAt.Format(time.RFC3339),
	}
	if d.PaymentID != nil {
		out.PaymentID = *d.PaymentID
	}
	if d.PaymentDate != nil {
		out.PaymentDate = d.PaymentDate.Format(time.RFC3339)
	}
	return out
}

// Delete godoc
//
//	@Summary		Delete a donation
//	@Description	Remove a donation record. The funds ledger is not changed.
//	@Tags			Admin
//	@Param			id	path	string	true	"Donation id"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/donations/{id} [delete]
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	adminID := auth.AdminIDFromContext(r.Context())
	if err := h.donationService.DeleteDonation(r.Context(), adminID, id); err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
			return
		}
		utils.RespondWithInternalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Ledger godoc
//
//	@Summary		Ledger consistency
//	@Description	Compare the running total with the sum of ledger entries.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LedgerResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ledger [get]
func (h *AdminHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	audit, err := h.ledgerService.LedgerAudit(r.Context())
	if err != nil {
		utils.RespondWithInternalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerResponseDTO{
		Success:      true,
		TotalRaised:  audit.TotalRaised.InexactFloat64(),
		EntriesTotal: audit.EntriesTotal.InexactFloat64(),
		Entries:      audit.Entries,
		Consistent:   audit.Consistent(),
	})
}
