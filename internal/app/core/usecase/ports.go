package usecase

import (
	"context"
	"time"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// 儲存層找不到資料時一律回傳 domain.ErrRecordNotFound

// MemberStore 會員資料表
type MemberStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
}

// AccountStore 帳戶資料表
type AccountStore interface {
	// FindByNumber 依帳號查詢
	FindByNumber(ctx context.Context, number string) (*domain.Account, error)
	// FindByOwner 列出會員持有的所有帳戶
	FindByOwner(ctx context.Context, memberID int64) ([]*domain.Account, error)
	// CountByOwner 會員持有的帳戶數
	CountByOwner(ctx context.Context, memberID int64) (int64, error)
	// FindHighestNumbered 帳號最大的帳戶
	FindHighestNumbered(ctx context.Context) (*domain.Account, error)
	// Save 新增或更新，回傳儲存後的帳戶 (含 ID)
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// LedgerStore 交易紀錄表，只新增不修改
type LedgerStore interface {
	FindByToken(ctx context.Context, token string) (*domain.Transaction, error)
	// FindCancellation 取消 token 這筆交易的成功 CANCEL 紀錄
	FindCancellation(ctx context.Context, token string) (*domain.Transaction, error)
	Save(ctx context.Context, tran *domain.Transaction) (*domain.Transaction, error)
}

// Transactor 讓帳戶更新與帳本寫入在同一個交易內完成
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LockService 外部的分散式鎖服務
type LockService interface {
	// TryAcquire 在 wait 內嘗試取得 key 的獨占鎖，取得後最多持有 lease。
	// 等待逾時回傳 (nil, false, nil)；只有非預期錯誤 (網路、context) 才回傳 error。
	TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (Lease, bool, error)
}

// Lease 已取得的鎖
type Lease interface {
	Release(ctx context.Context) error
}
