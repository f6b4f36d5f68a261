// Copyright (c) 2026 Foodgram. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, numeric bounds, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Composition Bounds: Inclusive ranges for ingredient amounts and cooking time.
  - Security: JWT issuers and session key prefixes.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "foodgram-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Composition Bounds

const (
	// MinValue is the inclusive lower bound for ingredient amounts and cooking time.
	MinValue = 1

	// MaxValue is the inclusive upper bound for ingredient amounts and cooking time.
	MaxValue = 100
)

// # Field Length Caps

const (
	// MaxNameLength caps recipe, ingredient, and tag names.
	MaxNameLength = 200

	// MaxUsernameLength caps account usernames.
	MaxUsernameLength = 150

	// MaxEmailLength caps account email addresses.
	MaxEmailLength = 254

	// HexColorLength is the exact length of a "#RRGGBB" tag color.
	HexColorLength = 7
)

// # Media

const (
	// MaxMediaBytes caps the decoded size of an uploaded image data URI.
	MaxMediaBytes = 10 << 20 // 10 MiB

	// MaxBodyBytes caps the raw request body. It leaves headroom above
	// MaxMediaBytes for the base64 inflation plus the JSON envelope.
	MaxBodyBytes = 16 << 20 // 16 MiB
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "foodgram.app"

	// AccessTokenTTL bounds the lifetime of an access token and its session entry.
	AccessTokenTTL = 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)
