package donations

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/gateway"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/pkg/money"
	"github.com/GlebRadaev/donations/pkg/utils"
	"github.com/GlebRadaev/donations/pkg/validate"
)

//go:generate mockgen -source=donations.go -destination=mock_donations.go -package=donations
type Service interface {
	CreateDonation(ctx context.Context, req domain.DonationRequest) (*domain.Donation, error)
	GatewayKey() string
	GetDonation(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	GetReceipt(ctx context.Context, receipt string) (*domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
	callbackURL     string
}

func New(donationService Service, callbackURL string) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		callbackURL:     callbackURL,
	}
}

// Donate godoc
//
//	@Summary		Start a donation
//	@Description	Validate the donor details, open a gateway order and store a pending donation.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DonateRequestDTO	true	"Donor details and amount"
//	@Success		201		{object}	dto.DonateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input or order refused by the gateway"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable or rate limited"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/donate [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			utils.RespondWithFields(w, http.StatusBadRequest, fe.Message(), fe)
			return
		}
		utils.RespondWithInternalError(w, err)
		return
	}

	amount, err := money.ParseAmount(string(req.Amount), req.Currency)
	if err != nil {
		utils.RespondWithFields(w, http.StatusBadRequest, err.Error(), map[string]string{"amount": err.Error()})
		return
	}

	donation, err := h.donationService.CreateDonation(r.Context(), domain.DonationRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Country:    req.Country,
		State:      req.State,
		City:       req.City,
		PostalCode: req.PostalCode,
		Amount:     amount,
		Currency:   req.Currency,
		ClientIP:   r.RemoteAddr,
	})
	if err != nil {
		var gwErr *gateway.Error
		var rateLimited *gateway.RateLimitError
		switch {
		case errors.As(err, &gwErr):
			utils.RespondWithError(w, http.StatusBadRequest, gwErr.Description)
		case errors.Is(err, money.ErrTooPrecise), errors.Is(err, money.ErrNotPositive),
			errors.Is(err, money.ErrTooLarge), errors.Is(err, money.ErrUnsupportedCurrency):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &rateLimited):
			if rateLimited.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rateLimited.RetryAfter.Seconds()))))
			}
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway is busy, try again later")
		case errors.Is(err, gateway.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		default:
			utils.RespondWithInternalError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.DonateResponseDTO{
		Success:       true,
		DonationID:    donation.ID.String(),
		OrderID:       donation.OrderID,
		Amount:        donation.Amount.InexactFloat64(),
		Currency:      donation.Currency,
		Email:         donation.Email,
		PaymentStatus: string(donation.PaymentStatus),
		GatewayKey:    h.donationService.GatewayKey(),
		CallbackURL:   h.callbackFor(donation.ID),
	})
}

func (h *DonationHandler) callbackFor(id uuid.UUID) string {
	u, err := url.Parse(h.callbackURL)
	if err != nil {
		return h.callbackURL + "?donationId=" + id.String()
	}
	q := u.Query()
	q.Set("donationId", id.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// Status godoc
//
//	@Summary		Donation status
//	@Description	Report the payment status of a donation.
//	@Tags			Donations
//	@Produce		json
//	@Param			id	path		string	true	"Donation id"
//	@Success		200	{object}	dto.DonationStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/donations/{id}/status [get]
func (h *DonationHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	donation, err := h.donationService.GetDonation(r.Context(), id)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
			return
		}
		utils.RespondWithInternalError(w, err)
		return
	}

	resp := dto.DonationStatusResponseDTO{
		Success:   true,
		Status:    string(donation.PaymentStatus),
		Amount:    donation.Amount.InexactFloat64(),
		Currency:  donation.Currency,
		CreatedAt: donation.CreatedAt.Format(time.RFC3339),
	}
	if donation.IsCompleted() {
		if donation.PaymentID != nil {
			resp.PaymentID = *donation.PaymentID
		}
		if donation.PaymentDate != nil {
			resp.PaymentDate = donation.PaymentDate.Format(time.RFC3339)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Receipt godoc
//
//	@Summary		Donation receipt
//	@Description	Look up a completed donation by its receipt number.
//	@Tags			Donations
//	@Produce		json
//	@Param			receipt	path		string	true	"Receipt number"
//	@Success		200		{object}	dto.ReceiptResponseDTO
//	@Failure		404		{object}	utils.Response	"Receipt not found"
//	@Failure		422		{object}	utils.Response	"Invalid receipt number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/receipts/{receipt} [get]
func (h *DonationHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	donation, err := h.donationService.GetReceipt(r.Context(), chi.URLParam(r, "receipt"))
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidReceipt):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid receipt number")
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Receipt not found")
		default:
			utils.RespondWithInternalError(w, err)
		}
		return
	}

	resp := dto.ReceiptResponseDTO{
		Success:    true,
		Receipt:    donation.Receipt,
		DonationID: donation.ID.String(),
		Name:       donation.Name,
		Amount:     donation.Amount.InexactFloat64(),
		Currency:   donation.Currency,
	}
	if donation.PaymentID != nil {
		resp.PaymentID = *donation.PaymentID
	}
	if donation.PaymentDate != nil {
		resp.PaymentDate = donation.PaymentDate.Format(time.RFC3339)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
