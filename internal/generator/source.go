// Package generator builds randomized usernames and passwords from
// user-configurable rules. All generation draws from a Source backed by
// crypto/rand by default; tests substitute a deterministic source.
package generator

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniformly distributed random indices.
type Source interface {
	// Intn returns a random int in [0, n). n must be positive.
	Intn(n int) int
}

// CryptoSource is the production Source, backed by crypto/rand.
type CryptoSource struct{}

// Intn returns a cryptographically random int in [0, n).
func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
