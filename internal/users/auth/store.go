package auth

import (
	"context"
	"time"
)

// UserRepository defines account persistence.
type UserRepository interface {
	Create(context context.Context, user *User) error
	FindByID(context context.Context, id int64) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	UpdatePassword(context context.Context, id int64, passwordHash string) error
}

// SessionRepository records token liveness. A key exists for the lifetime
// of the access token unless revoked earlier by logout.
type SessionRepository interface {
	Create(context context.Context, sessionKey string, ttl time.Duration) error
	Exists(context context.Context, sessionKey string) (bool, error)
	Delete(context context.Context, sessionKey string) error
}
