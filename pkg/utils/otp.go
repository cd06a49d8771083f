package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const otpLength = 6

// GenerateOTP returns a zero-padded numeric one-time code.
func GenerateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}

// NormalizePhone prepends the default country code when the number carries no
// explicit "+" prefix. Separators are stripped first.
func NormalizePhone(phone, countryCode string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	return countryCode + cleaned
}

// DigitsOnly reports whether s is non-empty and consists of digits, with an
// optional leading "+".
func DigitsOnly(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
