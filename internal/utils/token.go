package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenBytes is the amount of entropy, in bytes, behind every session
// token. 32 bytes gives a 43-character base64url token.
const sessionTokenBytes = 32

// NewSessionToken generates a cryptographically random opaque session token.
//
// The token is URL-safe so it can travel in a cookie value without escaping.
// Returns an error only if the operating system's entropy source fails.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
