package access

import (
	"crypto/rand"
	"math/big"
)

const (
	tokenLength = 64
	tokenChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// newToken returns a 64-character alphanumeric verification token.
func newToken() (string, error) {
	max := big.NewInt(int64(len(tokenChars)))
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tokenChars[n.Int64()]
	}
	return string(buf), nil
}
