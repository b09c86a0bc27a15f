package cache

import (
	"context"
	"fmt"
	"time"

	"musicgraph/config"
	"musicgraph/logger"

	"github.com/redis/go-redis/v9"
)

// Connect 初始化Redis连接。未配置 REDIS_ADDR 时返回 nil，缓存关闭
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		logger.Info("Redis not configured, catalog cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 测试连接
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis", logger.String("addr", cfg.RedisAddr), logger.Int("db", cfg.RedisDB))
	return client, nil
}

// Close 关闭Redis连接
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
