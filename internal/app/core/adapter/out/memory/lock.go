package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
)

// ErrLockNotHeld 鎖已過期或已被釋放
var ErrLockNotHeld = errors.New("lock was not held or already expired")

// DefaultRetryDelay 等待鎖時的重試間隔
const DefaultRetryDelay = 5 * time.Millisecond

type holder struct {
	token     string
	expiresAt time.Time
}

// LockService 單一行程內的鎖服務 (單機部署或測試用)
type LockService struct {
	mu         sync.Mutex
	holders    map[string]holder
	retryDelay time.Duration
	now        func() time.Time
}

func NewLockService(retryDelay time.Duration) *LockService {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &LockService{
		holders:    make(map[string]holder),
		retryDelay: retryDelay,
		now:        time.Now,
	}
}

// TryAcquire 在 wait 內重試取得鎖，過期的持有者視為已釋放
func (l *LockService) TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (usecase.Lease, bool, error) {
	token := uuid.NewString()
	deadline := l.now().Add(wait)
	for {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		if l.tryLock(key, token, lease) {
			return &memoryLease{service: l, key: key, token: token}, true, nil
		}
		remaining := deadline.Sub(l.now())
		if remaining <= 0 {
			return nil, false, nil
		}
		timer := time.NewTimer(min(l.retryDelay, remaining))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, false, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *LockService) tryLock(key, token string, lease time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if h, ok := l.holders[key]; ok && now.Before(h.expiresAt) {
		return false
	}
	l.holders[key] = holder{token: token, expiresAt: now.Add(lease)}
	return true
}

func (l *LockService) release(key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	h, ok := l.holders[key]
	if !ok || h.token != token {
		return ErrLockNotHeld
	}
	delete(l.holders, key)
	if l.now().After(h.expiresAt) {
		return ErrLockNotHeld
	}
	return nil
}

type memoryLease struct {
	service *LockService
	key     string
	token   string
}

func (m *memoryLease) Release(ctx context.Context) error {
	return m.service.release(m.key, m.token)
}

var _ usecase.LockService = (*LockService)(nil)
