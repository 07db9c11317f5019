package strava

import (
	"errors"
	"sync"
	"time"
)

// ErrNoToken is returned by a TokenStore that holds nothing.
var ErrNoToken = errors.New("no stored token")

// Token is the credential kept between sessions.
type Token struct {
	AccessToken  string    `json:"access_token" yaml:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// Valid reports whether the token carries an access token.
func (t Token) Valid() bool {
	return t.AccessToken != ""
}

// Expired reports whether the token has a known expiry in the past.
func (t Token) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

// TokenStore is the key-value store tokens are passed through to.
type TokenStore interface {
	Load() (Token, error)
	Save(Token) error
	Clear() error
}

// MemoryTokenStore keeps the token in process memory.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token *Token
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return Token{}, ErrNoToken
	}
	return *s.token, nil
}

func (s *MemoryTokenStore) Save(t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &t
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return nil
}
