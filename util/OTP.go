package util

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomDigits returns a numeric code of the given length
func GenerateRandomDigits(length int) string {
	digits := "0123456789"
	b := make([]byte, length)
	for i := range b {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		b[i] = digits[num.Int64()]
	}
	return string(b)
}
