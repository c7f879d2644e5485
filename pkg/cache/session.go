package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vidtube.com/pkg/constants"
)

func refreshTokenKey(userId int64) string {
	return fmt.Sprintf("refresh_token:%d", userId)
}

// SetRefreshToken records the refresh token issued at login so logout can
// revoke it before it expires.
func SetRefreshToken(ctx context.Context, userId int64, token string) error {
	return redisDB.Set(ctx, refreshTokenKey(userId), token, constants.RefreshTokenExpire).Err()
}

// GetRefreshToken returns the recorded token, or "" when none is active.
func GetRefreshToken(ctx context.Context, userId int64) (string, error) {
	token, err := redisDB.Get(ctx, refreshTokenKey(userId)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

// DelRefreshToken revokes the active refresh token (logout).
func DelRefreshToken(ctx context.Context, userId int64) error {
	return redisDB.Del(ctx, refreshTokenKey(userId)).Err()
}
