// Copyright (c) 2026 Foodgram

/*
Package auth implements identity and access management: registration,
credential verification, token issuance and session revocation.

Architecture:

  - Service: orchestrates register, login, logout and password change.
  - UserRepository: Postgres persistence for accounts.
  - SessionRepository: Redis liveness record per issued token, so logout
    revokes a JWT before its expiry.

Access tokens are HS256-signed JWTs. Every token carries a jti; a token is
only honored while its session key exists in Redis.
*/
package auth

import (
	"time"

	"github.com/IvanZabelin/foodgram/internal/platform/sec"
)

// User is the account entity. PasswordHash never leaves the server.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	PasswordHash string       `json:"-"`
	Avatar       string       `json:"avatar"`
	Role         sec.UserRole `json:"-"`
	CreatedAt    time.Time    `json:"-"`
}
