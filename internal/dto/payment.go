package dto

import "strings"

type VerifyPaymentRequestDTO struct {
	PaymentID  string         `json:"razorpay_payment_id" validate:"required" example:"pay_Xyz789"`
	OrderID    string         `json:"razorpay_order_id" validate:"required" example:"order_Abc123"`
	Signature  string         `json:"razorpay_signature" validate:"required" example:"3d7b1a66bdacd49cf1fbf70d25bca77bed5d4eb155327268177c460fda9b6135"`
	DonationID string         `json:"donationId" validate:"required" example:"5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
	Amount     FlexibleAmount `json:"amount,omitempty" swaggertype:"string" example:"500.00"`
}

func (v *VerifyPaymentRequestDTO) Normalize() {
	v.PaymentID = strings.TrimSpace(v.PaymentID)
	v.OrderID = strings.TrimSpace(v.OrderID)
	v.Signature = strings.TrimSpace(v.Signature)
	v.DonationID = strings.TrimSpace(v.DonationID)
	v.Amount = FlexibleAmount(strings.TrimSpace(string(v.Amount)))
}

type VerifyPaymentResponseDTO struct {
	Success       bool    `json:"success" example:"true"`
	DonationID    string  `json:"donationId" example:"5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
	Amount        float64 `json:"amount" example:"500"`
	Currency      string  `json:"currency" example:"INR"`
	PaymentStatus string  `json:"paymentStatus" example:"completed"`
	PaymentDate   string  `json:"paymentDate" example:"2026-01-15T10:05:00Z"`
	TotalRaised   float64 `json:"totalRaised" example:"1500"`
	ReceiptURL    string  `json:"receiptUrl" example:"https://example.org/receipts/17684712000001234"`
}
