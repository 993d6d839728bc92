package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// LockOptions 鎖的等待時間與租約
type LockOptions struct {
	// Wait 取得鎖最多等待多久
	Wait time.Duration
	// Lease 取得後最多持有多久，持有者崩潰時鎖會自動過期
	Lease time.Duration
}

// DefaultLockOptions 等待 1 秒、租約 5 秒
func DefaultLockOptions() LockOptions {
	return LockOptions{
		Wait:  time.Second,
		Lease: 5 * time.Second,
	}
}

// LockHandle 持有中的鎖，Unlock 多次呼叫只會釋放一次
type LockHandle struct {
	key   string
	lease Lease
	once  sync.Once
	err   error
}

// Key 鎖的名稱
func (h *LockHandle) Key() string {
	return h.key
}

// LockCoordinator 以帳號為 key 的互斥鎖協調者
type LockCoordinator struct {
	service LockService
	opts    LockOptions
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewLockCoordinator 建立 LockCoordinator
//
// 參數:
//
//	service: 分散式鎖服務 (redis / memory)
//	opts: 等待時間與租約，未設定的欄位使用預設值
//	logger: zap logger
func NewLockCoordinator(service LockService, opts LockOptions, logger *zap.Logger) *LockCoordinator {
	defaults := DefaultLockOptions()
	if opts.Wait <= 0 {
		opts.Wait = defaults.Wait
	}
	if opts.Lease <= 0 {
		opts.Lease = defaults.Lease
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LockCoordinator{
		service: service,
		opts:    opts,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// Lock 取得 key 的鎖
//
// 回傳:
//
//	*LockHandle: 取得的鎖，必須以 Unlock 釋放
//	error: 等待逾時回傳 domain.ErrLockAcquisition
func (c *LockCoordinator) Lock(ctx context.Context, key string) (*LockHandle, error) {
	if strings.TrimSpace(key) == "" {
		return nil, domain.ErrInvalidRequest
	}

	ctx, span := c.tracer.Start(ctx, "lock.acquire", trace.WithAttributes(attribute.String("lock.key", key)))
	defer span.End()

	lease, ok, err := c.service.TryAcquire(ctx, key, c.opts.Wait, c.opts.Lease)
	if err != nil {
		c.logger.Error("failed to acquire lock", zap.String("lock_key", key), zap.Error(err))
		recordSpanError(span, err)
		return nil, fmt.Errorf("acquire lock %q: %w", key, err)
	}
	if !ok {
		c.logger.Warn("lock busy", zap.String("lock_key", key), zap.Duration("wait", c.opts.Wait))
		recordSpanError(span, domain.ErrLockAcquisition)
		return nil, domain.ErrLockAcquisition
	}

	c.logger.Debug("lock acquired", zap.String("lock_key", key))
	return &LockHandle{key: key, lease: lease}, nil
}

// Unlock 釋放鎖，可重複呼叫
func (c *LockCoordinator) Unlock(ctx context.Context, handle *LockHandle) error {
	if handle == nil {
		return nil
	}
	handle.once.Do(func() {
		// 請求被取消時仍要釋放
		handle.err = handle.lease.Release(context.WithoutCancel(ctx))
		if handle.err != nil {
			c.logger.Error("failed to release lock", zap.String("lock_key", handle.key), zap.Error(handle.err))
			return
		}
		c.logger.Debug("lock released", zap.String("lock_key", handle.key))
	})
	return handle.err
}
