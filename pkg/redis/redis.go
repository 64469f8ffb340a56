package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// SetClient installs the shared client (called from internal/initial).
func SetClient(c *redis.Client) {
	client = c
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// IsConnected reports whether a client has been installed.
func IsConnected() bool {
	return client != nil
}

func checkClient() error {
	if client == nil {
		return fmt.Errorf("redis is not connected")
	}
	return nil
}

func Get(ctx context.Context, key string) (string, error) {
	if err := checkClient(); err != nil {
		return "", err
	}
	return client.Get(ctx, key).Result()
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := checkClient(); err != nil {
		return err
	}
	return client.Set(ctx, key, value, expiration).Err()
}

func Del(ctx context.Context, keys ...string) (int64, error) {
	if err := checkClient(); err != nil {
		return 0, err
	}
	return client.Del(ctx, keys...).Result()
}

// SAdd adds members to a set, used for per-team presence tracking.
func SAdd(ctx context.Context, key string, members ...interface{}) (int64, error) {
	if err := checkClient(); err != nil {
		return 0, err
	}
	return client.SAdd(ctx, key, members...).Result()
}

func SRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	if err := checkClient(); err != nil {
		return 0, err
	}
	return client.SRem(ctx, key, members...).Result()
}

func SMembers(ctx context.Context, key string) ([]string, error) {
	if err := checkClient(); err != nil {
		return nil, err
	}
	return client.SMembers(ctx, key).Result()
}
