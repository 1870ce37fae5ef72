package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 generates a public identifier: 16 random bytes rendered as
// 32 lowercase hex characters. Used for investment, participant and
// transaction IDs exposed over the API.
func NewID32() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails if the OS entropy source is broken;
		// there is no sane way to continue serving requests.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
