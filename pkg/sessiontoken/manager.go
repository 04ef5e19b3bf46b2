package sessiontoken

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/authcore/pkg/logger"
)

// TokenLength is the number of random bytes per token; hex encoding doubles
// it to a 64-character string.
const TokenLength = 32

type entry struct {
	username  string
	expiresAt time.Time
}

// Manager owns the opaque session token registry behind its own mutex,
// independent of the credential store's lock so unrelated traffic does not
// contend. Tokens live in memory only and die with the process.
type Manager struct {
	mu     sync.RWMutex
	tokens map[string]entry
	config Config
	clock  func() time.Time
	log    *slog.Logger
	ticker *time.Ticker
	done   chan struct{}
}

// New creates a session token manager. When the cleanup interval is
// positive, a background goroutine sweeps expired tokens on that cadence
// until Close is called.
func New(opts ...Option) *Manager {
	m := &Manager{
		tokens: make(map[string]entry),
		config: DefaultConfig(),
		clock:  time.Now,
		log:    logger.Discard(),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.config.CleanupInterval > 0 {
		m.ticker = time.NewTicker(m.config.CleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Generate mints a new token for the given username with the configured TTL.
// It does not check that the username exists anywhere: issuance and
// credential validity are decoupled, and the caller is expected to invoke
// this only after successful authentication. Fails closed when the secure
// random source is unavailable.
func (m *Manager) Generate(username string) (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	token := hex.EncodeToString(b)

	m.mu.Lock()
	m.tokens[token] = entry{
		username:  username,
		expiresAt: m.clock().Add(m.config.TTL),
	}
	m.mu.Unlock()

	return token, nil
}

// Validate reports whether the token is known and unexpired. Expiry is
// checked lazily: a token past its deadline reads as invalid even before the
// sweep removes it.
func (m *Manager) Validate(token string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, exists := m.tokens[token]
	if !exists {
		return false
	}

	return m.clock().Before(e.expiresAt)
}

// Owner returns the username a valid token was minted for. The second result
// is false for unknown or expired tokens.
func (m *Manager) Owner(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, exists := m.tokens[token]
	if !exists || !m.clock().Before(e.expiresAt) {
		return "", false
	}

	return e.username, true
}

// Invalidate removes the token. It is idempotent: invalidating an unknown or
// already-removed token is a no-op, so logout never fails.
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

// CleanupExpired scans the registry and removes every expired entry,
// returning the number removed. The scan holds the lock for its duration,
// bounded by the current entry count.
func (m *Manager) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	removed := 0
	for token, e := range m.tokens {
		if !now.Before(e.expiresAt) {
			delete(m.tokens, token)
			removed++
		}
	}

	return removed
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.config.TTL
}

// Len returns the number of tokens currently in the registry, expired or not.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.tokens)
}

// Close stops the background sweep goroutine. Safe to call multiple times.
func (m *Manager) Close() error {
	select {
	case <-m.done:
	default:
		close(m.done)
		if m.ticker != nil {
			m.ticker.Stop()
		}
	}
	return nil
}

func (m *Manager) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			if removed := m.CleanupExpired(); removed > 0 {
				m.log.Debug("expired session tokens removed",
					slog.Int("count", removed),
					logger.Component("sessiontoken"),
				)
			}
		case <-m.done:
			return
		}
	}
}
