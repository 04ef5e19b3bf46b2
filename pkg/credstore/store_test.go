package credstore_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authcore/pkg/credstore"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()

		err := store.Register("alice", "abcdefg1", "alice@example.com")
		require.NoError(t, err)

		user, ok := store.Get("alice")
		require.True(t, ok)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.CreatedAt.IsZero())
		assert.True(t, user.LastLogin.IsZero(), "fresh user has never logged in")
		assert.NotEmpty(t, user.PasswordHash)
		assert.Len(t, user.Salt, 64)
		assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("email is optional", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("bob", "abcdefg1", ""))
	})

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		err := store.Register("", "abcdefg1", "")
		assert.ErrorIs(t, err, credstore.ErrInvalidInput)
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		err := store.Register("alice", "", "")
		assert.ErrorIs(t, err, credstore.ErrInvalidInput)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		err := store.Register("alice", "different1", "")
		assert.ErrorIs(t, err, credstore.ErrUsernameTaken)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("concurrent registration admits exactly one", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()

		const n = 50
		var wg sync.WaitGroup
		errs := make([]error, n)

		for i := 0; i < n; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = store.Register("alice", "abcdefg1", "")
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, credstore.ErrUsernameTaken)
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, store.Len())
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	t.Run("rejects 7 characters with letter and digit", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, credstore.ValidatePassword("short1"), credstore.ErrWeakPassword)
	})

	t.Run("accepts 8 characters with letter and digit", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, credstore.ValidatePassword("abcdefg1"))
	})

	t.Run("rejects 8 characters without digit", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, credstore.ValidatePassword("abcdefgh"), credstore.ErrWeakPassword)
	})

	t.Run("rejects digits only", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, credstore.ValidatePassword("12345678"), credstore.ErrWeakPassword)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("correct credentials", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		assert.True(t, store.Authenticate("alice", "abcdefg1"))
	})

	t.Run("updates last login on success", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		store := credstore.New(credstore.WithClock(func() time.Time { return now }))
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		require.True(t, store.Authenticate("alice", "abcdefg1"))

		user, ok := store.Get("alice")
		require.True(t, ok)
		assert.Equal(t, now, user.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		assert.False(t, store.Authenticate("alice", "wrongpass1"))

		user, _ := store.Get("alice")
		assert.True(t, user.LastLogin.IsZero(), "failed attempt must not stamp last login")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		assert.False(t, store.Authenticate("ghost", "abcdefg1"))
	})

	t.Run("deactivated user fails with correct password", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		require.True(t, store.Deactivate("alice"))
		assert.False(t, store.Authenticate("alice", "abcdefg1"))

		require.True(t, store.Activate("alice"))
		assert.True(t, store.Authenticate("alice", "abcdefg1"))
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("successful change", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		before, _ := store.Get("alice")
		require.True(t, store.ChangePassword("alice", "abcdefg1", "newpass99"))
		after, _ := store.Get("alice")

		// salt and hash regenerate as a pair
		assert.NotEqual(t, before.Salt, after.Salt)
		assert.NotEqual(t, before.PasswordHash, after.PasswordHash)

		assert.False(t, store.Authenticate("alice", "abcdefg1"), "old password must stop working")
		assert.True(t, store.Authenticate("alice", "newpass99"))
	})

	t.Run("wrong old password", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		assert.False(t, store.ChangePassword("alice", "wrongold1", "newpass99"))
		assert.True(t, store.Authenticate("alice", "abcdefg1"))
	})

	t.Run("weak new password", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", ""))

		assert.False(t, store.ChangePassword("alice", "abcdefg1", "short1"))
		assert.True(t, store.Authenticate("alice", "abcdefg1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		assert.False(t, store.ChangePassword("ghost", "abcdefg1", "newpass99"))
	})
}

func TestActivationState(t *testing.T) {
	t.Parallel()

	store := credstore.New()
	require.NoError(t, store.Register("alice", "abcdefg1", ""))

	t.Run("deactivate and activate round-trip", func(t *testing.T) {
		require.True(t, store.Deactivate("alice"))
		user, _ := store.Get("alice")
		assert.False(t, user.IsActive)

		require.True(t, store.Activate("alice"))
		user, _ = store.Get("alice")
		assert.True(t, user.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.False(t, store.Deactivate("ghost"))
		assert.False(t, store.Activate("ghost"))
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("returns owned snapshot", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		require.NoError(t, store.Register("alice", "abcdefg1", "alice@example.com"))

		user, ok := store.Get("alice")
		require.True(t, ok)

		// Mutating the copy must not reach the registry.
		user.Email = "evil@example.com"
		user.IsActive = false

		fresh, _ := store.Get("alice")
		assert.Equal(t, "alice@example.com", fresh.Email)
		assert.True(t, fresh.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		store := credstore.New()
		_, ok := store.Get("ghost")
		assert.False(t, ok)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	store := credstore.New()
	require.NoError(t, store.Register("alice", "abcdefg1", ""))

	assert.True(t, store.Exists("alice"))
	assert.False(t, store.Exists("bob"))
}

func TestUpdateLastLogin(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := credstore.New(credstore.WithClock(func() time.Time { return now }))
	require.NoError(t, store.Register("alice", "abcdefg1", ""))

	store.UpdateLastLogin("alice")
	user, _ := store.Get("alice")
	assert.Equal(t, now, user.LastLogin)

	// no-op for unknown users
	store.UpdateLastLogin("ghost")
}
