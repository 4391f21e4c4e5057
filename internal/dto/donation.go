package dto

import (
	"strings"

	"github.com/GlebRadaev/donations/pkg/money"
)

type DonateRequestDTO struct {
	Name       string         `json:"name" validate:"required,max=100" example:"Asha Rao"`
	Email      string         `json:"email" validate:"required,email,max=254" example:"asha@example.com"`
	Phone      string         `json:"phone" validate:"required,max=20" example:"+919800000000"`
	Amount     FlexibleAmount `json:"amount" validate:"required" swaggertype:"string" example:"500.00"`
	Country    string         `json:"country" validate:"required,max=100" example:"India"`
	State      string         `json:"state" validate:"required,max=100" example:"Karnataka"`
	City       string         `json:"city" validate:"required,max=100" example:"Bengaluru"`
	PostalCode string         `json:"postalCode" validate:"required,max=20" example:"560001"`
	Address    string         `json:"address,omitempty" validate:"max=500" example:"12 MG Road"`
	Currency   string         `json:"currency,omitempty" validate:"currency" example:"INR"`
}

// Normalize trims input, lower-cases the email and defaults the currency.
func (d *DonateRequestDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Amount = FlexibleAmount(strings.TrimSpace(string(d.Amount)))
	d.Country = strings.TrimSpace(d.Country)
	d.State = strings.TrimSpace(d.State)
	d.City = strings.TrimSpace(d.City)
	d.PostalCode = strings.TrimSpace(d.PostalCode)
	d.Address = strings.TrimSpace(d.Address)
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
	if d.Currency == "" {
		d.Currency = money.DefaultCurrency
	}
}

type DonateResponseDTO struct {
	Success       bool    `json:"success" example:"true"`
	DonationID    string  `json:"donationId" example:"5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
	OrderID       string  `json:"orderId" example:"order_Abc123"`
	Amount        float64 `json:"amount" example:"500"`
	Currency      string  `json:"currency" example:"INR"`
	Email         string  `json:"email" example:"asha@example.com"`
	PaymentStatus string  `json:"paymentStatus" example:"pending"`
	GatewayKey    string  `json:"gatewayKey" example:"rzp_test_key"`
	CallbackURL   string  `json:"callbackUrl" example:"https://example.org/payment/callback?donationId=5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
}

type DonationStatusResponseDTO struct {
	Success     bool    `json:"success" example:"true"`
	Status      string  `json:"status" example:"completed"`
	Amount      float64 `json:"amount" example:"500"`
	Currency    string  `json:"currency" example:"INR"`
	CreatedAt   string  `json:"createdAt" example:"2026-01-15T10:00:00Z"`
	PaymentID   string  `json:"paymentId,omitempty" example:"pay_Xyz789"`
	PaymentDate string  `json:"paymentDate,omitempty" example:"2026-01-15T10:05:00Z"`
}

type ReceiptResponseDTO struct {
	Success     bool    `json:"success" example:"true"`
	Receipt     string  `json:"receipt" example:"17684712000001234"`
	DonationID  string  `json:"donationId" example:"5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
	Name        string  `json:"name" example:"Asha Rao"`
	Amount      float64 `json:"amount" example:"500"`
	Currency    string  `json:"currency" example:"INR"`
	PaymentID   string  `json:"paymentId" example:"pay_Xyz789"`
	PaymentDate string  `json:"paymentDate" example:"2026-01-15T10:05:00Z"`
}
