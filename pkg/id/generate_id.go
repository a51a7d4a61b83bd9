package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for loan, payment and expense identifiers.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewToken returns an unguessable invitation token. Same shape as NewID32,
// kept separate so call sites say what they mean.
func NewToken() string { return NewID32() }
