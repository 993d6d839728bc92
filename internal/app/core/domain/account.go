package domain

import "time"

// MaxAccountsPerMember 每位會員可持有的帳戶上限
const MaxAccountsPerMember = 10

// AccountStatus 帳戶狀態，只允許 IN_USE -> UNREGISTERED
type AccountStatus string

const (
	AccountStatusInUse        AccountStatus = "IN_USE"
	AccountStatusUnregistered AccountStatus = "UNREGISTERED"
)

// Account 帳戶
//
// Balance 以最小貨幣單位儲存，永遠 >= 0
type Account struct {
	ID             int64
	MemberID       int64
	Number         string
	Status         AccountStatus
	Balance        int64
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

// NewAccount 建立使用中的新帳戶
func NewAccount(memberID int64, number string, initialBalance int64, now time.Time) (*Account, error) {
	if initialBalance < 0 {
		return nil, ErrInvalidAmount
	}
	return &Account{
		MemberID:     memberID,
		Number:       number,
		Status:       AccountStatusInUse,
		Balance:      initialBalance,
		RegisteredAt: now,
	}, nil
}

// IsInUse 帳戶是否仍可交易
func (a *Account) IsInUse() bool {
	return a.Status == AccountStatusInUse
}

// Use 扣款
func (a *Account) Use(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Balance < amount {
		return ErrInsufficientBalance
	}
	a.Balance -= amount
	return nil
}

// Cancel 取消扣款，把金額加回餘額
func (a *Account) Cancel(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	a.Balance += amount
	return nil
}

// Unregister 解約，餘額必須為 0
func (a *Account) Unregister(now time.Time) error {
	if !a.IsInUse() {
		return ErrAccountAlreadyClosed
	}
	if a.Balance != 0 {
		return ErrBalanceNotEmpty
	}
	a.Status = AccountStatusUnregistered
	a.UnregisteredAt = &now
	return nil
}
