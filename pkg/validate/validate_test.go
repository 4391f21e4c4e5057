package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptNumber(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		receipt, err := NewReceiptNumber(now)
		require.NoError(t, err)
		assert.Len(t, receipt, 18)
		assert.True(t, IsReceipt(receipt), "receipt %s must pass the Luhn check", receipt)
		seen[receipt] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsReceipt(t *testing.T) {
	tests := []struct {
		name     string
		receipt  string
		expected bool
	}{
		{name: "Valid Luhn number", receipt: "2377225624", expected: true},
		{name: "Wrong check digit", receipt: "2377225625", expected: false},
		{name: "Letters", receipt: "rcpt_123", expected: false},
		{name: "Empty", receipt: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsReceipt(tt.receipt))
		})
	}
}

type sample struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Currency string `json:"currency" validate:"required,currency"`
	Note     string `json:"-" validate:"max=3"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name            string
		in              sample
		expectedFields  map[string]string
		expectedMessage string
	}{
		{
			name: "Valid",
			in:   sample{Name: "Asha", Email: "asha@example.org", Currency: "INR"},
		},
		{
			name: "Missing fields are reported by json name",
			in:   sample{Currency: "INR"},
			expectedFields: map[string]string{
				"name":  "is required",
				"email": "is required",
			},
			expectedMessage: "Missing required fields: email, name",
		},
		{
			name: "Malformed values",
			in:   sample{Name: "Asha", Email: "not-an-email", Currency: "XYZ", Note: "long"},
			expectedFields: map[string]string{
				"email":    "must be a valid email address",
				"currency": "must be a supported currency code",
				"Note":     "must be at most 3 characters",
			},
			expectedMessage: "Invalid fields: Note, currency, email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.expectedFields == nil {
				assert.NoError(t, err)
				return
			}
			var fe FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, FieldErrors(tt.expectedFields), fe)
			assert.Equal(t, tt.expectedMessage, fe.Message())
		})
	}
}
