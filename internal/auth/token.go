package auth

import "crypto/rand"

// TokenSource produces confirmation/reset tokens. Handlers take one as a
// dependency so tests can supply a deterministic source.
type TokenSource func() string

// TokenLength is the fixed length of confirmation and reset tokens.
const TokenLength = 6

const tokenAlphabet = "0123456789"

// NewToken returns a random 6-digit token.
func NewToken() string {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}
