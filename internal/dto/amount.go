package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrAmountFormat = errors.New("amount must be a number or a numeric string")

// FlexibleAmount accepts a JSON number or a JSON string and keeps its text.
// Parsing into a decimal happens later, with the currency known.
type FlexibleAmount string

func (a *FlexibleAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ErrAmountFormat
		}
		*a = FlexibleAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrAmountFormat
	}
	*a = FlexibleAmount(n.String())
	return nil
}
