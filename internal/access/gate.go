// Package access guards the task endpoints behind a single shared API key.
package access

import (
	"crypto/subtle"
	"errors"
	"net/http"
)

const (
	HeaderName = "X-API-KEY"
	QueryParam = "api_key"
)

var (
	ErrEmptySecret  = errors.New("api key secret is empty")
	ErrUnauthorized = errors.New("invalid api key")
)

// Gate compares presented credentials with the secret loaded at startup.
// It holds no other state and is safe for concurrent use.
type Gate struct {
	secret []byte
}

func New(secret string) (*Gate, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &Gate{secret: []byte(secret)}, nil
}

// Authorize reports whether presented is exactly the configured secret.
func (g *Gate) Authorize(presented string) bool {
	if presented == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(presented), g.secret) == 1
}

// Credential returns the API key of r, taken from the header and falling
// back to the query parameter when the header is empty.
func Credential(r *http.Request) string {
	if key := r.Header.Get(HeaderName); key != "" {
		return key
	}

	return r.URL.Query().Get(QueryParam)
}
