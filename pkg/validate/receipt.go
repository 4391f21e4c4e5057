package validate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

// NewReceiptNumber builds a numeric receipt reference from the creation time
// and a random suffix, terminated by a Luhn check digit.
func NewReceiptNumber(now time.Time) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("can't generate receipt suffix: %w", err)
	}
	base := strconv.FormatInt(now.UnixMilli(), 10) + fmt.Sprintf("%04d", suffix.Int64())
	_, full, err := goluhn.Calculate(base)
	if err != nil {
		return "", fmt.Errorf("can't calculate receipt check digit: %w", err)
	}
	return full, nil
}

func IsReceipt(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
