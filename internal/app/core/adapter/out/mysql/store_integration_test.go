//go:build integration

package mysql_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	pkgmysql "github.com/JoeShih716/go-quickpay/pkg/mysql"
)

// setupStore 啟動一次性的 MySQL container 並建立資料表
func setupStore(t *testing.T) *mysql.Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("quickpay"),
		tcmysql.WithUsername("quickpay"),
		tcmysql.WithPassword("quickpay"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	client, err := pkgmysql.NewClient(pkgmysql.Config{
		Host:     host,
		Port:     portNum,
		User:     "quickpay",
		Password: "quickpay",
		DBName:   "quickpay",
		LogLevel: "silent",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := mysql.NewStore(client)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SeedMembers(ctx,
		&domain.Member{ID: 1, Name: "alice"},
		&domain.Member{ID: 2, Name: "bob"},
	))
	return store
}

func TestIntegration_MySQL_Store(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("members", func(t *testing.T) {
		member, err := store.Members().FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", member.Name)

		_, err = store.Members().FindByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)

		// 重複寫入不報錯
		require.NoError(t, store.SeedMembers(ctx, &domain.Member{ID: 1, Name: "alice"}))
	})

	t.Run("accounts", func(t *testing.T) {
		_, err := store.Accounts().FindHighestNumbered(ctx)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)

		for _, number := range []string{"1000000000", "1000000001"} {
			account, err := domain.NewAccount(1, number, 500, now)
			require.NoError(t, err)
			saved, err := store.Accounts().Save(ctx, account)
			require.NoError(t, err)
			assert.NotZero(t, saved.ID)
		}

		dup, err := domain.NewAccount(2, "1000000000", 0, now)
		require.NoError(t, err)
		_, err = store.Accounts().Save(ctx, dup)
		assert.Error(t, err)

		highest, err := store.Accounts().FindHighestNumbered(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1000000001", highest.Number)

		n, err := store.Accounts().CountByOwner(ctx, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		owned, err := store.Accounts().FindByOwner(ctx, 1)
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, "1000000000", owned[0].Number)

		account := owned[1]
		require.NoError(t, account.Use(500))
		require.NoError(t, account.Unregister(now))
		_, err = store.Accounts().Save(ctx, account)
		require.NoError(t, err)

		got, err := store.Accounts().FindByNumber(ctx, "1000000001")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusUnregistered, got.Status)
		assert.Zero(t, got.Balance)
		require.NotNil(t, got.UnregisteredAt)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		account, err := store.Accounts().FindByNumber(ctx, "1000000000")
		require.NoError(t, err)

		boom := errors.New("boom")
		err = store.WithinTransaction(ctx, func(ctx context.Context) error {
			require.NoError(t, account.Use(100))
			if _, err := store.Accounts().Save(ctx, account); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.Accounts().FindByNumber(ctx, "1000000000")
		require.NoError(t, err)
		assert.EqualValues(t, 500, got.Balance)
	})

	t.Run("read inside transaction locks the row", func(t *testing.T) {
		locked := make(chan struct{})
		release := make(chan struct{})
		holder := make(chan error, 1)
		go func() {
			holder <- store.WithinTransaction(ctx, func(ctx context.Context) error {
				if _, err := store.Accounts().FindByNumber(ctx, "1000000000"); err != nil {
					return err
				}
				close(locked)
				<-release
				return nil
			})
		}()
		<-locked

		waiter := make(chan error, 1)
		go func() {
			waiter <- store.WithinTransaction(ctx, func(ctx context.Context) error {
				account, err := store.Accounts().FindByNumber(ctx, "1000000000")
				if err != nil {
					return err
				}
				if err := account.Use(10); err != nil {
					return err
				}
				_, err = store.Accounts().Save(ctx, account)
				return err
			})
		}()

		// 第一個交易結束前，第二個交易卡在 FOR UPDATE
		select {
		case err := <-waiter:
			t.Fatalf("second transaction finished while the row was locked: %v", err)
		case <-time.After(300 * time.Millisecond):
		}

		close(release)
		require.NoError(t, <-holder)
		require.NoError(t, <-waiter)

		got, err := store.Accounts().FindByNumber(ctx, "1000000000")
		require.NoError(t, err)
		assert.EqualValues(t, 490, got.Balance)
	})
}

func TestIntegration_MySQL_BalanceFlow(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	locks := usecase.NewLockCoordinator(memory.NewLockService(0), usecase.DefaultLockOptions(), nil)
	engine := usecase.NewTransactionEngine(store.Members(), store.Accounts(), store.Ledger(), store)
	accounts := usecase.NewAccountUseCase(store.Members(), store.Accounts(), usecase.NewAccountNumberAllocator(store.Accounts()))
	core := usecase.NewCoreUseCase(engine, accounts, locks, nil)

	account, err := core.CreateAccount(ctx, usecase.CreateAccountCommand{MemberID: 1, InitialBalance: 1000})
	require.NoError(t, err)
	assert.Equal(t, usecase.InitialAccountNumber, account.Number)

	used, err := core.UseBalance(ctx, usecase.UseBalanceCommand{MemberID: 1, AccountNumber: account.Number, Amount: 300})
	require.NoError(t, err)
	assert.EqualValues(t, 700, used.BalanceSnapshot)

	_, err = core.UseBalance(ctx, usecase.UseBalanceCommand{MemberID: 2, AccountNumber: account.Number, Amount: 10})
	assert.ErrorIs(t, err, domain.ErrOwnershipMismatch)

	cancelled, err := core.CancelBalance(ctx, usecase.CancelBalanceCommand{
		TransactionToken: used.Token,
		AccountNumber:    account.Number,
		Amount:           300,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1000, cancelled.BalanceSnapshot)
	assert.Equal(t, used.Token, cancelled.CancelledToken)

	_, err = core.CancelBalance(ctx, usecase.CancelBalanceCommand{
		TransactionToken: used.Token,
		AccountNumber:    account.Number,
		Amount:           300,
	})
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyCancelled)

	found, err := store.Ledger().FindCancellation(ctx, used.Token)
	require.NoError(t, err)
	assert.Equal(t, cancelled.Token, found.Token)

	got, err := core.QueryTransaction(ctx, used.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeUse, got.Type)
	assert.Equal(t, domain.TransactionResultSuccess, got.Result)
}
