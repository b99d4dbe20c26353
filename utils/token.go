package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomToken returns a token of the given length drawn from a
// CSPRNG; used for password-reset codes.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// there is no safe fallback for a reset code.
			panic(err)
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
