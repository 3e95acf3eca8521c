package ports

import (
	"context"
	"time"
)

// SessionRegistry tracks live login sessions by token ID so logout is an
// actual revocation rather than a client-side fiction.
type SessionRegistry interface {
	Register(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	IsLive(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
