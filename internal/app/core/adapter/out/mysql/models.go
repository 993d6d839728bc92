package mysql

import (
	"time"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// sqlMember 對應資料庫的 members 表
type sqlMember struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:64"`
}

func (*sqlMember) TableName() string {
	return "members"
}

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	MemberID       int64  `gorm:"index"`
	Number         string `gorm:"size:10;uniqueIndex"` // 帳號不可重複
	Status         string `gorm:"size:16"`
	Balance        int64
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlTransaction 對應資料庫的 transactions 表
type sqlTransaction struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Token           string `gorm:"size:32;uniqueIndex"` // 對應 domain.Transaction.Token
	Type            string `gorm:"size:16"`
	Result          string `gorm:"size:16"`
	AccountID       int64  `gorm:"index"`
	AccountNumber   string `gorm:"size:10"`
	Amount          int64
	BalanceSnapshot int64
	TransactedAt    time.Time
	CancelledToken  string `gorm:"size:32;index"` // CANCEL 紀錄指向的原交易
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

func toMember(m *sqlMember) *domain.Member {
	return &domain.Member{ID: m.ID, Name: m.Name}
}

func fromAccount(a *domain.Account) *sqlAccount {
	return &sqlAccount{
		ID:             a.ID,
		MemberID:       a.MemberID,
		Number:         a.Number,
		Status:         string(a.Status),
		Balance:        a.Balance,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
	}
}

func toAccount(a *sqlAccount) *domain.Account {
	return &domain.Account{
		ID:             a.ID,
		MemberID:       a.MemberID,
		Number:         a.Number,
		Status:         domain.AccountStatus(a.Status),
		Balance:        a.Balance,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
	}
}

func fromTransaction(t *domain.Transaction) *sqlTransaction {
	return &sqlTransaction{
		ID:              t.ID,
		Token:           t.Token,
		Type:            string(t.Type),
		Result:          string(t.Result),
		AccountID:       t.AccountID,
		AccountNumber:   t.AccountNumber,
		Amount:          t.Amount,
		BalanceSnapshot: t.BalanceSnapshot,
		TransactedAt:    t.TransactedAt,
		CancelledToken:  t.CancelledToken,
	}
}

func toTransaction(t *sqlTransaction) *domain.Transaction {
	return &domain.Transaction{
		ID:              t.ID,
		Token:           t.Token,
		Type:            domain.TransactionType(t.Type),
		Result:          domain.TransactionResult(t.Result),
		AccountID:       t.AccountID,
		AccountNumber:   t.AccountNumber,
		Amount:          t.Amount,
		BalanceSnapshot: t.BalanceSnapshot,
		TransactedAt:    t.TransactedAt,
		CancelledToken:  t.CancelledToken,
	}
}
