package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
)

const (
	alice int64 = 1
	bob   int64 = 2
)

type fixture struct {
	store   *memory.Store
	lockSvc *memory.LockService
	locks   *usecase.LockCoordinator
	engine  *usecase.TransactionEngine
	core    *usecase.CoreUseCase
	now     time.Time
}

func newFixture(t *testing.T, lockOpts usecase.LockOptions) *fixture {
	t.Helper()
	store, err := memory.NewStore(nil,
		&domain.Member{ID: alice, Name: "alice"},
		&domain.Member{ID: bob, Name: "bob"},
	)
	require.NoError(t, err)

	f := &fixture{
		store:   store,
		lockSvc: memory.NewLockService(time.Millisecond),
		now:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.locks = usecase.NewLockCoordinator(f.lockSvc, lockOpts, nil)
	f.engine = usecase.NewTransactionEngine(store.Members(), store.Accounts(), store.Ledger(), store,
		usecase.WithClock(func() time.Time { return f.now }))
	accounts := usecase.NewAccountUseCase(store.Members(), store.Accounts(), usecase.NewAccountNumberAllocator(store.Accounts()))
	f.core = usecase.NewCoreUseCase(f.engine, accounts, f.locks, nil)
	return f
}

// openAccount 直接寫入帳戶，略過開戶流程
func (f *fixture) openAccount(t *testing.T, memberID int64, number string, balance int64) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(memberID, number, balance, f.now)
	require.NoError(t, err)
	saved, err := f.store.Accounts().Save(context.Background(), account)
	require.NoError(t, err)
	return saved
}

func (f *fixture) balanceOf(t *testing.T, number string) int64 {
	t.Helper()
	account, err := f.store.Accounts().FindByNumber(context.Background(), number)
	require.NoError(t, err)
	return account.Balance
}
