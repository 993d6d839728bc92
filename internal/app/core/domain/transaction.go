package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CancellationWindowYears 交易可被取消的期限 (一年)
const CancellationWindowYears = 1

// TransactionType 交易類型
type TransactionType string

const (
	// 使用餘額
	TransactionTypeUse TransactionType = "USE"
	// 取消使用
	TransactionTypeCancel TransactionType = "CANCEL"
)

// TransactionResult 交易結果
type TransactionResult string

const (
	TransactionResultSuccess TransactionResult = "SUCCESS"
	TransactionResultFailed  TransactionResult = "FAILED"
)

// Transaction 帳本紀錄，寫入後不可修改；更正一律以新的 CANCEL 紀錄表示
type Transaction struct {
	ID int64
	// Token: 全域唯一的交易編號，用於查詢與取消
	Token  string
	Type   TransactionType
	Result TransactionResult
	// AccountID, AccountNumber: 所屬帳戶
	AccountID     int64
	AccountNumber string
	Amount        int64
	// BalanceSnapshot: 交易後餘額；失敗的交易記錄當下未變動的餘額
	BalanceSnapshot int64
	TransactedAt    time.Time
	// CancelledToken: 成功的 CANCEL 紀錄指向被取消的原交易編號
	CancelledToken string
}

// NewTransaction 依帳戶當下狀態建立一筆帳本紀錄
func NewTransaction(txType TransactionType, result TransactionResult, account *Account, amount int64, now time.Time) *Transaction {
	return &Transaction{
		Token:           NewTransactionToken(),
		Type:            txType,
		Result:          result,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactedAt:    now,
	}
}

// NewTransactionToken 產生 32 字元的交易編號 (去掉 '-' 的 UUID)
func NewTransactionToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// CanBeCancelled 只有成功的 USE 交易才有可取消的扣款
func (t *Transaction) CanBeCancelled() bool {
	return t.Type == TransactionTypeUse && t.Result == TransactionResultSuccess
}

// IsCancellable 交易時間是否仍在可取消期限內
func (t *Transaction) IsCancellable(now time.Time) bool {
	return !t.TransactedAt.Before(now.AddDate(-CancellationWindowYears, 0, 0))
}
