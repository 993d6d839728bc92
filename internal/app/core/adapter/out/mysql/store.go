package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	"github.com/JoeShih716/go-quickpay/pkg/mysql"
)

type txKey struct{}

// Store 以 MySQL 實作的資料表集合
type Store struct {
	client *mysql.Client
}

func NewStore(client *mysql.Client) *Store {
	return &Store{client: client}
}

// Migrate 建立或更新資料表結構
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.client.DB().WithContext(ctx).AutoMigrate(&sqlMember{}, &sqlAccount{}, &sqlTransaction{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedMembers 寫入會員資料，已存在的會員保持不變
func (s *Store) SeedMembers(ctx context.Context, members ...*domain.Member) error {
	if len(members) == 0 {
		return nil
	}
	rows := make([]sqlMember, 0, len(members))
	for _, m := range members {
		rows = append(rows, sqlMember{ID: m.ID, Name: m.Name})
	}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// WithinTransaction 開啟資料庫交易並放入 ctx，fn 內的 store 操作都會使用同一個交易
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// db 取得 ctx 中的交易，沒有則使用一般連線
func (s *Store) db(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return s.client.DB().WithContext(ctx)
}

// forUpdate 交易內的讀取加上 SELECT ... FOR UPDATE，交易結束前其他交易無法修改同一列
func (s *Store) forUpdate(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return s.client.DB().WithContext(ctx)
}

// Members 會員資料表
func (s *Store) Members() *MemberStore { return &MemberStore{s: s} }

// Accounts 帳戶資料表
func (s *Store) Accounts() *AccountStore { return &AccountStore{s: s} }

// Ledger 交易紀錄表
func (s *Store) Ledger() *LedgerStore { return &LedgerStore{s: s} }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

// MemberStore 會員資料表
type MemberStore struct {
	s *Store
}

func (m *MemberStore) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	var row sqlMember
	if err := m.s.db(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return toMember(&row), nil
}

// AccountStore 帳戶資料表
type AccountStore struct {
	s *Store
}

// FindByNumber 在交易內會鎖住該帳戶列直到交易結束
func (a *AccountStore) FindByNumber(ctx context.Context, number string) (*domain.Account, error) {
	var row sqlAccount
	if err := a.s.forUpdate(ctx).Where("number = ?", number).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return toAccount(&row), nil
}

func (a *AccountStore) FindByOwner(ctx context.Context, memberID int64) ([]*domain.Account, error) {
	var rows []sqlAccount
	if err := a.s.db(ctx).Where("member_id = ?", memberID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, toAccount(&rows[i]))
	}
	return out, nil
}

func (a *AccountStore) CountByOwner(ctx context.Context, memberID int64) (int64, error) {
	var n int64
	err := a.s.db(ctx).Model(&sqlAccount{}).Where("member_id = ?", memberID).Count(&n).Error
	return n, err
}

// FindHighestNumbered 帳號位數固定，字串排序即數值排序
func (a *AccountStore) FindHighestNumbered(ctx context.Context) (*domain.Account, error) {
	var row sqlAccount
	if err := a.s.db(ctx).Order("number DESC").First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return toAccount(&row), nil
}

// Save 新增 (ID 為 0) 或更新帳戶
func (a *AccountStore) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	row := fromAccount(account)
	db := a.s.db(ctx)
	if row.ID == 0 {
		if err := db.Create(row).Error; err != nil {
			return nil, fmt.Errorf("create account %s: %w", row.Number, err)
		}
		return toAccount(row), nil
	}

	res := db.Model(&sqlAccount{}).Where("id = ?", row.ID).Select("*").Updates(row)
	if res.Error != nil {
		return nil, fmt.Errorf("update account %s: %w", row.Number, res.Error)
	}
	return toAccount(row), nil
}

// LedgerStore 交易紀錄表
type LedgerStore struct {
	s *Store
}

func (l *LedgerStore) FindByToken(ctx context.Context, token string) (*domain.Transaction, error) {
	var row sqlTransaction
	if err := l.s.db(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return toTransaction(&row), nil
}

func (l *LedgerStore) FindCancellation(ctx context.Context, token string) (*domain.Transaction, error) {
	var row sqlTransaction
	err := l.s.db(ctx).
		Where("cancelled_token = ? AND type = ? AND result = ?", token, domain.TransactionTypeCancel, domain.TransactionResultSuccess).
		First(&row).Error
	if err != nil {
		return nil, notFound(err)
	}
	return toTransaction(&row), nil
}

// Save 只允許新增，交易編號重複由 unique index 擋下
func (l *LedgerStore) Save(ctx context.Context, tran *domain.Transaction) (*domain.Transaction, error) {
	row := fromTransaction(tran)
	row.ID = 0
	if err := l.s.db(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create transaction %s: %w", row.Token, err)
	}
	return toTransaction(row), nil
}

var (
	_ usecase.MemberStore  = (*MemberStore)(nil)
	_ usecase.AccountStore = (*AccountStore)(nil)
	_ usecase.LedgerStore  = (*LedgerStore)(nil)
	_ usecase.Transactor   = (*Store)(nil)
)
