// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

// RedisRevocationStore implements [RevocationStore] with expiring Redis keys.
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore creates a Redis-backed [RevocationStore].
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
Revoke stores the token id with a TTL equal to the token's remaining lifetime.

Parameters:
  - ctx: context.Context
  - tokenID: the jti claim
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := constants.RedisPrefixRevokedToken + tokenID

	if err := repository.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoke_token_failed: %w", err)
	}
	return nil
}

/*
IsRevoked reports whether the token id is present.

Returns:
  - bool: true while the revocation entry lives
  - error: Connectivity errors
*/
func (repository *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + tokenID

	count, err := repository.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revoked_lookup_failed: %w", err)
	}
	return count > 0, nil
}
