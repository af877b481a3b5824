// Package sessions holds the in-memory registry of active session tokens.
// The registry lives for the server process lifetime; tokens are never
// persisted and there is no revocation, a new grant simply replaces the
// previous token for that user.
package sessions

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry maps username -> current session token. It is safe for
// concurrent use; create one with NewRegistry and pass it by handle into
// the services that need it.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]string)}
}

// Grant issues a fresh session token for username, replacing any prior
// token. Tokens are UUIDv7 values: time-ordered, with the random bits drawn
// from crypto/rand, so they are not guessable.
func (r *Registry) Grant(username string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	token := id.String()

	r.mu.Lock()
	r.tokens[username] = token
	r.mu.Unlock()

	return token, nil
}

// Validate reports whether token is the current session token for username.
// The comparison is constant time in the token length.
func (r *Registry) Validate(username, token string) bool {
	r.mu.RLock()
	stored, ok := r.tokens[username]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}
