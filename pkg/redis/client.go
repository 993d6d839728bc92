package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client 封裝 go-redis 實例
type Client struct {
	rdb *goredis.Client
}

// NewClient 建立並回傳一個新的 Redis 客戶端實例
//
// 參數:
//
//	cfg: Config - Redis 連線配置
//	logger: 重試時輸出警告
//
// 回傳值:
//
//	*Client: 封裝後的 Redis 客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
	})

	// Retry mechanism for redis connection
	maxRetries := 10
	retryInterval := 2 * time.Second

	var err error
	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			logger.Warn("failed to connect to redis, retrying",
				zap.Int("attempt", i+1),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("retry_in", retryInterval),
				zap.Error(err))
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
	}

	return &Client{rdb: rdb}, nil
}

// Redis 回傳底層的 go-redis 實例
func (c *Client) Redis() *goredis.Client {
	return c.rdb
}

// Close 關閉連線
func (c *Client) Close() error {
	return c.rdb.Close()
}
