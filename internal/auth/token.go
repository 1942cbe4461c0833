package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrTokenExpired = errors.New("access token expired")
)

// Token is an access token with an optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token is set and not expired. A zero ExpiresAt never expires.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Before(t.ExpiresAt)
}

// TokenManager supplies the access token sent with every request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager hands out a token configured by the user. It never
// acquires or refreshes tokens.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token Token
}

// NewStaticTokenManager creates a manager for token without expiry.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: Token{AccessToken: token}}
}

// GetToken returns the configured token. An empty token yields "" so the
// request goes out unauthenticated; an expired one is an error.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.token.AccessToken == "" {
		return "", nil
	}

	if !m.token.Valid() {
		return "", ErrTokenExpired
	}

	return m.token.AccessToken, nil
}

// SetToken replaces the token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = Token{AccessToken: token, ExpiresAt: expiresAt}
}
