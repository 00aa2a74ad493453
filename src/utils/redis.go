package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-PlacementCell/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Callers handle the nil (no Redis) case.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken adds an access token to the blacklist (used on logout).
// Returns nil if Redis is not available (development mode).
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		fmt.Println("redis client not initialized")
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(Ctx, key, "1", expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a token has been blacklisted.
// Returns false if Redis is not available (no blacklist in development mode).
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
