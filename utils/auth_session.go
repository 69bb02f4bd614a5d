// File: serviceboard/utils/auth_session.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const RevokedTokenPrefix = "revoked:"

// TokenRevoker records credentials that were signed out before they expired.
type TokenRevoker interface {
	// Revoke marks the token id as unusable until the given time.
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	// IsRevoked reports whether the token id was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisTokenRevoker keeps revoked token ids in Redis with a TTL matching the token's remaining life.
type RedisTokenRevoker struct {
	client *redis.Client
}

func NewRedisTokenRevoker(client *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, RevokedTokenPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, RevokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}

// NoopTokenRevoker is used when no Redis is configured; logout only clears the cookie.
type NoopTokenRevoker struct{}

func (NoopTokenRevoker) Revoke(context.Context, string, time.Time) error { return nil }

func (NoopTokenRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }
