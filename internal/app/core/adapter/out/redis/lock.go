package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
)

const (
	// KeyPrefix redis 上鎖的 key 前綴
	KeyPrefix = "quickpay:lock:"

	// DefaultRetryDelay 等待期間的重試間隔
	DefaultRetryDelay = 50 * time.Millisecond

	driftFactor = 0.01
)

// ErrLockNotHeld 釋放時鎖已過期或被他人持有
var ErrLockNotHeld = errors.New("lock was not held or already expired")

// LockService 以 redsync (RedLock) 實作的分散式鎖
type LockService struct {
	redsync    *redsync.Redsync
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewLockService 建立 LockService
//
// 參數:
//
//	client: go-redis 客戶端
//	retryDelay: 等待鎖時的重試間隔，<= 0 使用 DefaultRetryDelay
//	logger: zap logger
func NewLockService(client goredislib.UniversalClient, retryDelay time.Duration, logger *zap.Logger) *LockService {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LockService{
		redsync:    redsync.New(goredis.NewPool(client)),
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// TryAcquire 在 wait 內以 retryDelay 間隔重試取得鎖，取得後 lease 到期自動釋放
func (l *LockService) TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (usecase.Lease, bool, error) {
	mutex := l.redsync.NewMutex(
		KeyPrefix+key,
		redsync.WithExpiry(lease),
		redsync.WithTries(triesFor(wait, l.retryDelay)),
		redsync.WithRetryDelay(l.retryDelay),
		redsync.WithDriftFactor(driftFactor),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if isLockContention(err) {
			l.logger.Debug("lock already held by another process", zap.String("lock_key", key))
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redsync lock %s: %w", key, err)
	}
	return &redisLease{mutex: mutex}, true, nil
}

// triesFor 依等待時間換算嘗試次數，至少一次
func triesFor(wait, retryDelay time.Duration) int {
	if wait <= 0 {
		return 1
	}
	return int(wait/retryDelay) + 1
}

// isLockContention 區分「鎖被別人拿走」與真正的錯誤 (網路、context)
func isLockContention(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var taken *redsync.ErrTaken
	if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "lock already taken") || strings.Contains(msg, "failed to acquire lock")
}

type redisLease struct {
	mutex *redsync.Mutex
}

func (r *redisLease) Release(ctx context.Context) error {
	ok, err := r.mutex.UnlockContext(ctx)
	if err != nil {
		return fmt.Errorf("redsync unlock %s: %w", r.mutex.Name(), err)
	}
	if !ok {
		return ErrLockNotHeld
	}
	return nil
}

var _ usecase.LockService = (*LockService)(nil)
