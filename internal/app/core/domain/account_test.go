package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	now := time.Now()
	account, err := NewAccount(1, "1000000000", 10000, now)
	require.NoError(t, err)
	assert.Equal(t, AccountStatusInUse, account.Status)
	assert.Equal(t, int64(10000), account.Balance)
	assert.Equal(t, now, account.RegisteredAt)
	assert.Nil(t, account.UnregisteredAt)

	_, err = NewAccount(1, "1000000000", -1, now)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAccount_Use(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		wantErr     error
	}{
		{name: "enough balance", balance: 10000, amount: 200, wantBalance: 9800},
		{name: "exact balance", balance: 200, amount: 200, wantBalance: 0},
		{name: "insufficient", balance: 100, amount: 200, wantBalance: 100, wantErr: ErrInsufficientBalance},
		{name: "zero amount", balance: 100, amount: 0, wantBalance: 100, wantErr: ErrInvalidAmount},
		{name: "negative amount", balance: 100, amount: -5, wantBalance: 100, wantErr: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{Balance: tt.balance, Status: AccountStatusInUse}
			err := account.Use(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, account.Balance)
		})
	}
}

func TestAccount_UseThenCancelRestoresBalance(t *testing.T) {
	account := &Account{Balance: 10000, Status: AccountStatusInUse}
	require.NoError(t, account.Use(1234))
	require.NoError(t, account.Cancel(1234))
	assert.Equal(t, int64(10000), account.Balance)

	assert.ErrorIs(t, account.Cancel(-1), ErrInvalidAmount)
	assert.Equal(t, int64(10000), account.Balance)
}

func TestAccount_Unregister(t *testing.T) {
	now := time.Now()

	account := &Account{Balance: 100, Status: AccountStatusInUse}
	assert.ErrorIs(t, account.Unregister(now), ErrBalanceNotEmpty)
	assert.True(t, account.IsInUse())

	account.Balance = 0
	require.NoError(t, account.Unregister(now))
	assert.Equal(t, AccountStatusUnregistered, account.Status)
	require.NotNil(t, account.UnregisteredAt)
	assert.Equal(t, now, *account.UnregisteredAt)

	// 不可逆
	assert.ErrorIs(t, account.Unregister(now), ErrAccountAlreadyClosed)
}

func TestError_Is(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrInsufficientBalance)
	assert.ErrorIs(t, wrapped, ErrInsufficientBalance)
	assert.NotErrorIs(t, wrapped, ErrAccountNotFound)

	assert.Equal(t, ErrInsufficientBalance, AsError(wrapped))
	assert.Equal(t, ErrInternal, AsError(errors.New("boom")))
	assert.Nil(t, AsError(nil))

	assert.True(t, IsDomainError(ErrLockAcquisition))
	assert.False(t, IsDomainError(ErrRecordNotFound))
}
