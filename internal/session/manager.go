// Package session issues and resolves opaque bearer tokens for authenticated
// accounts. Sessions live in a Store with a fixed lifetime; expired entries are
// evicted lazily on the first access after expiry rather than by a sweeper.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"gomun/internal/apperr"
)

// tokenBytes is the entropy of an issued token (256 bits, base64url-encoded).
const tokenBytes = 32

// Manager defines the interface for session lifecycle operations
type Manager interface {
	// Issue creates a session for email and returns the token plus its
	// lifetime in whole seconds.
	Issue(ctx context.Context, email string) (string, int, error)
	// Resolve maps an Authorization header value to the owning account's
	// email, evicting the session if it has expired.
	Resolve(ctx context.Context, authorization string) (string, error)
	// Active reports the number of stored sessions (expired ones included
	// until their next access).
	Active(ctx context.Context) (int, error)
}

// manager implements Manager interface
type manager struct {
	store Store
	ttl   time.Duration
	clock clockwork.Clock
}

// NewManager creates a session manager with a fixed session lifetime
func NewManager(store Store, ttl time.Duration, clock clockwork.Clock) Manager {
	return &manager{
		store: store,
		ttl:   ttl,
		clock: clock,
	}
}

// Issue creates a new session. Every call issues a fresh token; one account
// may hold any number of concurrent sessions.
func (m *manager) Issue(ctx context.Context, email string) (string, int, error) {
	token, err := newToken()
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := m.clock.Now()
	sess := Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Set(ctx, token, sess); err != nil {
		return "", 0, fmt.Errorf("failed to store session: %w", err)
	}

	return token, int(m.ttl.Seconds()), nil
}

// Resolve validates a bearer credential and returns the session owner's email.
func (m *manager) Resolve(ctx context.Context, authorization string) (string, error) {
	token, ok := parseBearer(authorization)
	if !ok {
		return "", apperr.Auth("missing credential")
	}

	sess, found, err := m.store.Get(ctx, token)
	if err != nil {
		return "", apperr.Internal("failed to load session", err)
	}
	if !found {
		return "", apperr.Auth("invalid session")
	}

	// now >= expires_at counts as expired; evict on this access
	if !m.clock.Now().Before(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, token)
		return "", apperr.Auth("session expired")
	}

	return sess.Email, nil
}

// Active returns the current session table size
func (m *manager) Active(ctx context.Context) (int, error) {
	return m.store.Len(ctx)
}

// newToken returns an unguessable opaque token. Clients must not rely on any
// structure in it.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// parseBearer extracts the token from an "Authorization: Bearer <token>" value.
func parseBearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
