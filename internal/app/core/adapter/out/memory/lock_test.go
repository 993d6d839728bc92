package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockService_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	l := NewLockService(time.Millisecond)

	lease, ok, err := l.TryAcquire(ctx, "1000000000", 10*time.Millisecond, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// 其他帳號不受影響
	other, ok, err := l.TryAcquire(ctx, "1000000001", 10*time.Millisecond, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, other.Release(ctx))

	// 同帳號在 wait 內取不到
	_, ok, err = l.TryAcquire(ctx, "1000000000", 20*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, lease.Release(ctx))
	assert.ErrorIs(t, lease.Release(ctx), ErrLockNotHeld)

	again, ok, err := l.TryAcquire(ctx, "1000000000", 10*time.Millisecond, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, again.Release(ctx))
}

func TestLockService_WaitsForRelease(t *testing.T) {
	ctx := context.Background()
	l := NewLockService(time.Millisecond)

	lease, ok, err := l.TryAcquire(ctx, "k", 0, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = lease.Release(ctx)
	}()

	second, ok, err := l.TryAcquire(ctx, "k", time.Second, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, second.Release(ctx))
}

func TestLockService_LeaseExpires(t *testing.T) {
	ctx := context.Background()
	l := NewLockService(time.Millisecond)
	now := time.Now()
	l.now = func() time.Time { return now }

	stale, ok, err := l.TryAcquire(ctx, "k", 0, 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// 持有者超過租約，鎖自動失效
	now = now.Add(6 * time.Second)
	fresh, ok, err := l.TryAcquire(ctx, "k", 0, 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// 舊持有者不能釋放新持有者的鎖
	assert.ErrorIs(t, stale.Release(ctx), ErrLockNotHeld)
	require.NoError(t, fresh.Release(ctx))
}

func TestLockService_ContextCancelled(t *testing.T) {
	l := NewLockService(time.Millisecond)
	_, ok, err := l.TryAcquire(context.Background(), "k", 0, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err = l.TryAcquire(ctx, "k", time.Second, time.Second)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}
