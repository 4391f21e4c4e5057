// Package audit writes security relevant events as JSON lines, separate from
// the application log.
package audit

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	EventSignatureMismatch = "signature_mismatch"
	EventOrderMismatch     = "order_mismatch"
	EventAmountMismatch    = "amount_mismatch"
	EventAdminLoginFailed  = "admin_login_failed"
	EventAdminDeletion     = "admin_donation_deleted"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=audit
type Logger interface {
	PaymentRejected(event, donationID, orderID, paymentID, clientIP string)
	AdminLoginFailed(login, clientIP string)
	AdminAction(event, adminID, target string)
}

type ZerologLogger struct {
	log zerolog.Logger
}

func New(w io.Writer) *ZerologLogger {
	return &ZerologLogger{
		log: zerolog.New(w).With().Timestamp().Str("stream", "security").Logger(),
	}
}

func NewStderr() *ZerologLogger {
	return New(os.Stderr)
}

// PaymentRejected records a refused payment proof. The submitted signature is
// deliberately not part of the record.
func (l *ZerologLogger) PaymentRejected(event, donationID, orderID, paymentID, clientIP string) {
	l.log.Warn().
		Str("event", event).
		Str("donation_id", donationID).
		Str("order_id", orderID).
		Str("payment_id", paymentID).
		Str("client_ip", clientIP).
		Msg("payment proof rejected")
}

func (l *ZerologLogger) AdminLoginFailed(login, clientIP string) {
	l.log.Warn().
		Str("event", EventAdminLoginFailed).
		Str("login", login).
		Str("client_ip", clientIP).
		Msg("admin login failed")
}

func (l *ZerologLogger) AdminAction(event, adminID, target string) {
	l.log.Info().
		Str("event", event).
		Str("admin_id", adminID).
		Str("target", target).
		Msg("admin action")
}

// Nop discards every event.
type Nop struct{}

func (Nop) PaymentRejected(string, string, string, string, string) {}
func (Nop) AdminLoginFailed(string, string)                         {}
func (Nop) AdminAction(string, string, string)                      {}
