// Package fingerprint derives pseudonymous caller identities for rate limiting.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// prefixLen is the number of hex characters kept from the digest.
const prefixLen = 16

// Hasher computes salted, truncated digests of caller IPs. The raw IP is never
// stored; only the irreversible prefix leaves this package.
type Hasher struct {
	salt string
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:prefixLen]
}
