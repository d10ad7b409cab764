package security

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateInviteToken returns a URL-safe random token with n bytes of
// entropy. Used for invitation links, which must be unguessable.
func GenerateInviteToken(n int) (string, error) {
	if n <= 0 {
		n = 32
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
