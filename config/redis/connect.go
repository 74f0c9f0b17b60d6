package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"task-assistant/config"
	"task-assistant/pkg/log"
)

const pingTimeout = 5 * time.Second

// Connect parses cfg.URL, opens a client and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis.Connect.ParseURL: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis.Connect.Ping: %w", err)
	}

	return client, nil
}

// Disconnect closes the client.
func Disconnect(ctx context.Context, l log.Logger, client *goredis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		l.Errorf(ctx, "config.redis.Disconnect: %v", err)
		return
	}
	l.Info(ctx, "redis client closed")
}
