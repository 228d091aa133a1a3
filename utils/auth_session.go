// File: utils/auth_session.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const AdminSessionPrefix = "adminSession:"

// SaveAdminSession stores the hash of an issued admin token in Redis with a TTL.
// Logout deletes the entry, revoking the token before its JWT expiry.
func SaveAdminSession(client *redis.Client, tokenHash, adminID string, ttl time.Duration) error {
	ctx := context.Background()
	return client.Set(ctx, AdminSessionPrefix+tokenHash, adminID, ttl).Err()
}

// AdminSessionExists reports whether the token hash still maps to a live session.
func AdminSessionExists(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, AdminSessionPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteAdminSession removes an admin session from Redis.
func DeleteAdminSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AdminSessionPrefix+tokenHash).Err()
}
