package credstore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authcore/pkg/logger"
	"github.com/dmitrymomot/authcore/pkg/passhash"
)

// Store owns the username -> User registry behind a single mutex. All
// operations are short, synchronous, and never perform I/O while holding the
// lock. Construct one instance at process start and pass it to the request
// layer; the store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[string]*User
	clock func() time.Time
	log   *slog.Logger
}

// Option configures a Store during construction.
type Option func(*Store)

// WithLogger sets the logger used for failure-path diagnostics.
// Passwords are never logged.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests that need
// deterministic timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates an empty credential store.
func New(opts ...Option) *Store {
	s := &Store{
		users: make(map[string]*User),
		clock: time.Now,
		log:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a new user with a fresh salt and hash. The username is
// the unique key: a second registration for the same name fails with
// ErrUsernameTaken, including under concurrent callers.
func (s *Store) Register(username, password, email string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	if err := ValidatePassword(password); err != nil {
		return err
	}

	// Salt and hash are derived before taking the lock so the critical
	// section stays a map check plus insert.
	salt, err := passhash.GenerateSalt()
	if err != nil {
		s.log.Error("salt generation failed", logger.Error(err), logger.Component("credstore"))
		return err
	}
	hash := passhash.HashPassword(password, salt)
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUsernameTaken
	}

	s.users[username] = &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		Email:        email,
		IsActive:     true,
		CreatedAt:    now,
	}

	return nil
}

// Authenticate reports whether the username/password pair is valid for an
// active user, updating LastLogin on success. The result is a uniform false
// for a missing user, a deactivated user, and a wrong password: callers must
// not be able to enumerate accounts through the response shape.
func (s *Store) Authenticate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		s.log.Debug("authentication failed", slog.String("username", username), logger.Component("credstore"))
		return false
	}

	if !user.IsActive {
		s.log.Debug("authentication failed", slog.String("username", username), logger.Component("credstore"))
		return false
	}

	if !passhash.VerifyPassword(password, user.PasswordHash, user.Salt) {
		s.log.Debug("authentication failed", slog.String("username", username), logger.Component("credstore"))
		return false
	}

	user.LastLogin = s.clock()
	return true
}

// ChangePassword replaces the user's salt and hash as an atomic pair after
// verifying the old password. The new password must satisfy the same policy
// as registration. Returns false on a missing user, a wrong old password, or
// a weak new password.
func (s *Store) ChangePassword(username, oldPassword, newPassword string) bool {
	if err := ValidatePassword(newPassword); err != nil {
		return false
	}

	salt, err := passhash.GenerateSalt()
	if err != nil {
		s.log.Error("salt generation failed", logger.Error(err), logger.Component("credstore"))
		return false
	}
	hash := passhash.HashPassword(newPassword, salt)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return false
	}

	if !passhash.VerifyPassword(oldPassword, user.PasswordHash, user.Salt) {
		return false
	}

	// Salt and hash flip together; the hash is never valid against a stale salt.
	user.Salt = salt
	user.PasswordHash = hash
	return true
}

// Deactivate marks the user inactive. A deactivated user fails
// authentication even with the correct password. Returns false if the user
// does not exist.
func (s *Store) Deactivate(username string) bool {
	return s.setActive(username, false)
}

// Activate restores a deactivated user. Returns false if the user does not
// exist.
func (s *Store) Activate(username string) bool {
	return s.setActive(username, true)
}

func (s *Store) setActive(username string, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return false
	}

	user.IsActive = active
	return true
}

// Exists reports whether a user is registered under the given username.
func (s *Store) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.users[username]
	return exists
}

// Get returns an owned snapshot of the user record. Mutating the returned
// value has no effect on the store.
func (s *Store) Get(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return User{}, false
	}

	return *user, true
}

// UpdateLastLogin stamps the user's last login with the current time.
// Authenticate already does this on success; the method exists for callers
// that establish identity through another channel.
func (s *Store) UpdateLastLogin(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, exists := s.users[username]; exists {
		user.LastLogin = s.clock()
	}
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}
