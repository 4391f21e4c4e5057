package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	// PaymentRefunded is accepted by the schema; nothing in this service sets it.
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Donation struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	Country    string    `db:"country"`
	State      string    `db:"state"`
	City       string    `db:"city"`
	PostalCode string    `db:"postal_code"`

	Amount   decimal.Decimal `db:"amount"`
	Currency string          `db:"currency"`

	OrderID       string        `db:"order_id"`
	PaymentID     *string       `db:"payment_id"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentDate   *time.Time    `db:"payment_date"`
	Receipt       string        `db:"receipt"`

	ClientIP string `db:"client_ip"`

	DonorDonationCount int             `db:"donor_donation_count"`
	DonorTotalDonated  decimal.Decimal `db:"donor_total_donated"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (d *Donation) IsCompleted() bool {
	return d.PaymentStatus == PaymentCompleted
}

// LedgerEntry records one credited donation; at most one exists per donation.
type LedgerEntry struct {
	DonationID uuid.UUID       `db:"donation_id"`
	PaymentID  string          `db:"payment_id"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Admin struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type RecentDonation struct {
	Name   string
	Amount decimal.Decimal
	Date   time.Time
}

type FundStats struct {
	TotalRaised     decimal.Decimal
	TotalDonations  int64
	AverageDonation decimal.Decimal
	RecentDonations []RecentDonation
}

type LedgerAudit struct {
	TotalRaised  decimal.Decimal
	EntriesTotal decimal.Decimal
	Entries      int64
}

func (a LedgerAudit) Consistent() bool {
	return a.TotalRaised.Equal(a.EntriesTotal)
}
