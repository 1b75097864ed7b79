package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// RandomDigits returns n random decimal digits, used for referral suffixes and demo auth codes
func RandomDigits(n int) string {
	const digits = "0123456789"
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			out[i] = digits[i%len(digits)]
			continue
		}
		out[i] = digits[idx.Int64()]
	}
	return string(out)
}
