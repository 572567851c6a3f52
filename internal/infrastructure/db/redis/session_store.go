package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevocationTTL = time.Minute

// SessionStore tracks revoked session tokens so logout takes effect before a
// token's natural expiry. Keys carry a TTL matching the token's remaining
// lifetime; tokens are stored hashed, never verbatim.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marks the token as logged out for ttl.
func (s *SessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	return s.client.Set(ctx, s.key(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been logged out.
func (s *SessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}
