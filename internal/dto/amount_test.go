package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    FlexibleAmount
		wantErr bool
	}{
		{name: "number", body: `{"amount": 500}`, want: "500"},
		{name: "fractional number", body: `{"amount": 10.05}`, want: "10.05"},
		{name: "string", body: `{"amount": "500.00"}`, want: "500.00"},
		{name: "null", body: `{"amount": null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "bool", body: `{"amount": true}`, wantErr: true},
		{name: "object", body: `{"amount": {"value": 1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req DonateRequestDTO
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Amount)
		})
	}
}

func TestDonateRequestDTO_Normalize(t *testing.T) {
	req := DonateRequestDTO{
		Name:   "  Asha Rao ",
		Email:  " Asha@Example.COM ",
		Amount: " 500 ",
	}
	req.Normalize()

	assert.Equal(t, "Asha Rao", req.Name)
	assert.Equal(t, "asha@example.com", req.Email)
	assert.Equal(t, FlexibleAmount("500"), req.Amount)
	assert.Equal(t, "INR", req.Currency)

	req.Currency = " usd"
	req.Normalize()
	assert.Equal(t, "USD", req.Currency)
}
