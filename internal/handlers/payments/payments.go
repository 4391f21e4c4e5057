package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/service/paymentservice"
	"github.com/GlebRadaev/donations/pkg/utils"
	"github.com/GlebRadaev/donations/pkg/validate"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments
type Service interface {
	Verify(ctx context.Context, proof domain.PaymentProof) (*domain.VerifiedPayment, error)
}

type PaymentHandler struct {
	paymentService Service
	publicURL      string
}

func New(paymentService Service, publicURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		publicURL:      strings.TrimRight(publicURL, "/"),
	}
}

// Verify godoc
//
//	@Summary		Verify a payment
//	@Description	Check the gateway signature for a donation, mark it completed and credit the funds ledger.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Gateway payment proof"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields, invalid signature or mismatched order"
//	@Failure		404		{object}	utils.Response	"Donation not found"
//	@Failure		409		{object}	utils.Response	"Donation is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/verify-payment [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
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

	donationID, err := uuid.Parse(req.DonationID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	proof := domain.PaymentProof{
		DonationID: donationID,
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Signature:  req.Signature,
		ClientIP:   r.RemoteAddr,
	}
	if req.Amount != "" {
		amount, err := decimal.NewFromString(string(req.Amount))
		if err != nil {
			utils.RespondWithFields(w, http.StatusBadRequest, "Invalid amount", map[string]string{"amount": "must be a number"})
			return
		}
		proof.Amount = &amount
	}

	result, err := h.paymentService.Verify(r.Context(), proof)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
		case errors.Is(err, paymentservice.ErrInvalidSignature),
			errors.Is(err, paymentservice.ErrOrderMismatch),
			errors.Is(err, paymentservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithInternalError(w, err)
		}
		return
	}

	donation := result.Donation
	resp := dto.VerifyPaymentResponseDTO{
		Success:       true,
		DonationID:    donation.ID.String(),
		Amount:        donation.Amount.InexactFloat64(),
		Currency:      donation.Currency,
		PaymentStatus: string(donation.PaymentStatus),
		TotalRaised:   result.TotalRaised.InexactFloat64(),
		ReceiptURL:    h.publicURL + "/receipts/" + url.PathEscape(donation.Receipt),
	}
	if donation.PaymentDate != nil {
		resp.PaymentDate = donation.PaymentDate.Format(time.RFC3339)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
