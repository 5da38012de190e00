package code

import (
	"crypto/rand"
	"math/big"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length of the public codes handed to clients
const Length = 6

// Generate produces a random public code for a room or tournament. Callers
// are expected to retry a bounded number of times on key collision.
func Generate() (string, error) {
	code := make([]byte, Length)
	for i := 0; i < Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}
