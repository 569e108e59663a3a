package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOtp returns a 6-digit code uniformly sampled in [100000, 999999].
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otp generation: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
