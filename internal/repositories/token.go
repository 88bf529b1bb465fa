package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// RevokedTokenRepository keeps a Redis denylist of revoked token ids.
// Entries expire together with the token they revoke, so the set stays
// bounded by the token validity window.
type RevokedTokenRepository struct {
	client *redis.Client
}

func NewRevokedTokenRepository(client *redis.Client) *RevokedTokenRepository {
	return &RevokedTokenRepository{client: client}
}

// Revoke puts a token id on the denylist for the token's remaining lifetime.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to deny.
		return nil
	}

	key := fmt.Sprintf("revoked_token:%s", jti)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoke",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token id is on the denylist.
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := fmt.Sprintf("revoked_token:%s", jti)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("token denylist lookup failed", "key", key, "error", err)
		return false, err
	}
	return true, nil
}
