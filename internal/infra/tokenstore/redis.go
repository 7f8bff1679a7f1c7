package tokenstore

import (
	"context"
	"time"

	"event-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisRevocationStore keeps one key per revoked jti, expiring with the token itself.
type RedisRevocationStore struct {
	client    redis.Cmdable
	keyPrefix string
	now       func() time.Time
}

func NewRedisRevocationStore(client redis.Cmdable, keyPrefix string) *RedisRevocationStore {
	return &RedisRevocationStore{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *RedisRevocationStore) key(tokenID string) string {
	return s.keyPrefix + "revoked:" + tokenID
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// Already expired; the signature check rejects it anyway
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenID), 1, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store revoked token")
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to look up revoked token")
	}
	return n > 0, nil
}
