package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationRequest is a validated donation intent.
type DonationRequest struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	Country    string
	State      string
	City       string
	PostalCode string
	Amount     decimal.Decimal
	Currency   string
	ClientIP   string
}

// PaymentProof is what the client forwards after the gateway redirect.
type PaymentProof struct {
	DonationID uuid.UUID
	OrderID    string
	PaymentID  string
	Signature  string
	// Amount is optional and only ever compared with the stored amount.
	Amount   *decimal.Decimal
	ClientIP string
}

type VerifiedPayment struct {
	Donation    *Donation
	TotalRaised decimal.Decimal
	// Credited is false when the donation had already been completed earlier.
	Credited bool
}

type DonationFilter struct {
	Search string
	Status PaymentStatus
	Page   int
	Limit  int
}

type DonationPage struct {
	Items []Donation
	Total int64
	Page  int
	Limit int
}
