package credstore

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record owned by the store. LastLogin is the zero time
// until the first successful authentication.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Salt         string
	Email        string // optional
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    time.Time
}
