package util

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// OTPLength is the fixed width of reset codes.
const OTPLength = 6

// GenerateOTP returns a 6-digit decimal code, leading zeros included.
// Drawing one digit at a time keeps the distribution uniform over the full
// 000000–999999 range; reducing a larger random value modulo 10^6 would not.
func GenerateOTP() (string, error) {
	var builder strings.Builder
	builder.Grow(OTPLength)
	for i := 0; i < OTPLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		builder.WriteByte(byte('0' + n.Int64()))
	}
	return builder.String(), nil
}

// ValidOTPFormat reports whether s is exactly six ASCII digits. Callers gate
// on this before any storage lookup.
func ValidOTPFormat(s string) bool {
	if len(s) != OTPLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
