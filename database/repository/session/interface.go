package session

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a key is missing or has expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// SessionRepository stores JSON-encoded session state with a sliding TTL.
type SessionRepository interface {
	Load(ctx context.Context, key string, dest any) error
	Save(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FlagRepository stores presence flags and small JSON documents.
type FlagRepository interface {
	SetFlag(ctx context.Context, key string, ttl time.Duration) error
	HasFlag(ctx context.Context, key string) (bool, error)
	SessionRepository
}
