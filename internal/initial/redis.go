package initial

import (
	"context"
	"fmt"
	"time"

	"LiveDesk/internal/config"
	"LiveDesk/pkg/redis"
	"LiveDesk/pkg/zlog"

	goredis "github.com/redis/go-redis/v9"
)

func init() {
	conf := config.GetConfig()
	host := conf.RedisConfig.Host
	port := conf.RedisConfig.Port

	// Redis is optional: presence tracking and the widget settings cache
	// degrade gracefully without it.
	if host == "" {
		zlog.Info("redis not configured, skipping initialization")
		return
	}

	if port == 0 {
		port = 6379
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	zlog.Info(fmt.Sprintf("redis connecting: %s", addr))

	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     conf.RedisConfig.Password,
		DB:           conf.RedisConfig.DB,
		PoolSize:     conf.RedisConfig.PoolSize,
		MinIdleConns: conf.RedisConfig.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zlog.Error(fmt.Sprintf("redis connection failed: %v", err))
		_ = client.Close()
		return
	}

	redis.SetClient(client)
	zlog.Info("redis connected")
}
