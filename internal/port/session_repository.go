package port

import (
	"context"
	"time"
)

type SessionRepository interface {
	// SaveSession stores an opaque session blob under sessionID with a TTL.
	SaveSession(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error

	// GetSession returns the stored blob, or nil when the session is absent or expired.
	GetSession(ctx context.Context, sessionID string) ([]byte, error)

	// DeleteSession removes the session; absent ids are not an error.
	DeleteSession(ctx context.Context, sessionID string) error

	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)
}
