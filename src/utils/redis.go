package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Firewatch-115/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Nil when Redis was not configured; callers handle that case.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken adds an access token to the blacklist (used on logout).
// Returns nil if Redis is not available.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a token has been revoked. Without Redis
// there is no blacklist and every parseable token passes.
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := client.Get(Ctx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
