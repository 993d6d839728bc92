package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// InitialAccountNumber 第一個配發的帳號
const InitialAccountNumber = "1000000000"

// ErrAccountNumberExhausted 帳號已超出位數
var ErrAccountNumberExhausted = errors.New("account number space exhausted")

// AccountNumberAllocator 配發下一個連續帳號。
// 本身不加鎖，呼叫端需持有 AccountSequenceLockKey。
type AccountNumberAllocator struct {
	accounts AccountStore
}

func NewAccountNumberAllocator(accounts AccountStore) *AccountNumberAllocator {
	return &AccountNumberAllocator{accounts: accounts}
}

// Next 回傳目前最大帳號 + 1，保持相同位數；沒有任何帳戶時回傳 InitialAccountNumber
func (a *AccountNumberAllocator) Next(ctx context.Context) (string, error) {
	highest, err := a.accounts.FindHighestNumbered(ctx)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return InitialAccountNumber, nil
	}
	if err != nil {
		return "", fmt.Errorf("find highest account: %w", err)
	}

	n, err := strconv.ParseUint(highest.Number, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse account number %q: %w", highest.Number, err)
	}
	width := len(highest.Number)
	next := fmt.Sprintf("%0*d", width, n+1)
	if len(next) > width {
		return "", ErrAccountNumberExhausted
	}
	return next, nil
}
