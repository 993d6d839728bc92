package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("use balance: %w", ErrInsufficientBalance)
	assert.ErrorIs(t, wrapped, ErrInsufficientBalance)
	assert.ErrorIs(t, wrapped, &Error{Code: CodeAmountExceedBalance})
	assert.NotErrorIs(t, wrapped, ErrAccountNotFound)
	assert.NotErrorIs(t, wrapped, errors.New("amount exceeds balance"))
}

func TestError_SentinelsAreDistinct(t *testing.T) {
	sentinels := []*Error{
		ErrMemberNotFound,
		ErrAccountNotFound,
		ErrOwnershipMismatch,
		ErrAccountAlreadyClosed,
		ErrInsufficientBalance,
		ErrTransactionNotFound,
		ErrTransactionAccountMismatch,
		ErrPartialCancelNotAllowed,
		ErrCancellationWindowExpired,
		ErrTransactionNotCancellable,
		ErrTransactionAlreadyCancelled,
		ErrInvalidAmount,
		ErrInvalidRequest,
		ErrLockAcquisition,
		ErrMaxAccountsPerMember,
		ErrBalanceNotEmpty,
		ErrInternal,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.Falsef(t, errors.Is(a, b), "%s should not match %s", a.Code, b.Code)
		}
	}
	assert.False(t, errors.Is(ErrInvalidRequest, ErrInvalidAmount))
	assert.False(t, errors.Is(ErrInvalidAmount, ErrInvalidRequest))
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))
	assert.Same(t, ErrInvalidAmount, AsError(fmt.Errorf("wrap: %w", ErrInvalidAmount)))
	assert.Same(t, ErrInternal, AsError(errors.New("boom")))
	assert.True(t, IsDomainError(ErrLockAcquisition))
	assert.False(t, IsDomainError(ErrRecordNotFound))
}
