package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRegistry tracks live login sessions in Redis, keyed by the JWT's
// jti. A token whose jti is no longer registered is treated as revoked, so
// logout takes effect immediately instead of waiting for token expiry.
// Key format: session:<jti>
type SessionRegistry struct {
	client *redis.Client
}

func NewSessionRegistry(client *redis.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

// Register records a session for ttl, the token's remaining lifetime.
func (s *SessionRegistry) Register(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("register session: %w", err)
	}
	return nil
}

// IsLive reports whether the session is still registered.
func (s *SessionRegistry) IsLive(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Revoke removes the session. Revoking an unknown session is a no-op.
func (s *SessionRegistry) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, s.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionRegistry) key(tokenID string) string {
	return "session:" + tokenID
}
