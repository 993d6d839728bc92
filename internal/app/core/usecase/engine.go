package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// TransactionEngine 餘額交易引擎
//
// UseBalance / CancelBalance 需在呼叫端持有該帳號的鎖時執行 (見 WithAccountLock)；
// 讀取、驗證與寫入都在同一個 Transactor 交易內，MySQL 會以 FOR UPDATE 鎖住帳戶列。
// 驗證失敗時只回傳錯誤，不寫帳本；失敗紀錄由呼叫端透過 RecordFailedUse / RecordFailedCancel 補寫。
type TransactionEngine struct {
	members    MemberStore
	accounts   AccountStore
	ledger     LedgerStore
	transactor Transactor
	now        func() time.Time
	tracer     trace.Tracer
}

// EngineOption TransactionEngine 的設定選項
type EngineOption func(*TransactionEngine)

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) EngineOption {
	return func(e *TransactionEngine) {
		e.now = now
	}
}

func NewTransactionEngine(members MemberStore, accounts AccountStore, ledger LedgerStore, transactor Transactor, opts ...EngineOption) *TransactionEngine {
	e := &TransactionEngine{
		members:    members,
		accounts:   accounts,
		ledger:     ledger,
		transactor: transactor,
		now:        time.Now,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UseBalance 使用餘額
//
// 參數:
//
//	ctx: 上下文
//	memberID: 會員 ID
//	accountNumber: 帳號
//	amount: 金額
//
// 回傳:
//
//	*domain.Transaction: SUCCESS/USE 紀錄，BalanceSnapshot 為扣款後餘額
//	error: 驗證失敗的業務錯誤
func (e *TransactionEngine) UseBalance(ctx context.Context, memberID int64, accountNumber string, amount int64) (tran *domain.Transaction, err error) {
	ctx, span := e.startSpan(ctx, "engine.use_balance", accountNumber, amount)
	defer endSpan(span, &err)

	err = e.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		member, err := e.getMember(ctx, memberID)
		if err != nil {
			return err
		}
		account, err := e.getAccount(ctx, accountNumber)
		if err != nil {
			return err
		}
		if err := validateUseBalance(member, account, amount); err != nil {
			return err
		}

		if err := account.Use(amount); err != nil {
			return err
		}
		tran, err = e.persist(ctx, account, domain.NewTransaction(domain.TransactionTypeUse, domain.TransactionResultSuccess, account, amount, e.now()))
		return err
	})
	if err != nil {
		return nil, err
	}
	return tran, nil
}

// RecordFailedUse 補寫 FAILED/USE 紀錄，餘額不變
func (e *TransactionEngine) RecordFailedUse(ctx context.Context, accountNumber string, amount int64) (*domain.Transaction, error) {
	return e.recordFailure(ctx, domain.TransactionTypeUse, accountNumber, amount)
}

// CancelBalance 取消先前的使用，只允許全額取消
//
// 參數:
//
//	ctx: 上下文
//	token: 原交易編號
//	accountNumber: 帳號
//	amount: 取消金額，必須等於原交易金額
//
// 回傳:
//
//	*domain.Transaction: SUCCESS/CANCEL 紀錄，BalanceSnapshot 為加回後餘額
//	error: 驗證失敗的業務錯誤
func (e *TransactionEngine) CancelBalance(ctx context.Context, token, accountNumber string, amount int64) (tran *domain.Transaction, err error) {
	ctx, span := e.startSpan(ctx, "engine.cancel_balance", accountNumber, amount)
	defer endSpan(span, &err)

	err = e.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := e.getAccount(ctx, accountNumber)
		if err != nil {
			return err
		}
		original, err := e.getTransaction(ctx, token)
		if err != nil {
			return err
		}
		if err := validateCancelBalance(original, account, amount, e.now()); err != nil {
			return err
		}
		if err := e.ensureNotCancelled(ctx, original.Token); err != nil {
			return err
		}

		if err := account.Cancel(amount); err != nil {
			return err
		}
		cancel := domain.NewTransaction(domain.TransactionTypeCancel, domain.TransactionResultSuccess, account, amount, e.now())
		cancel.CancelledToken = original.Token
		tran, err = e.persist(ctx, account, cancel)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tran, nil
}

// RecordFailedCancel 補寫 FAILED/CANCEL 紀錄，餘額不變
func (e *TransactionEngine) RecordFailedCancel(ctx context.Context, accountNumber string, amount int64) (*domain.Transaction, error) {
	return e.recordFailure(ctx, domain.TransactionTypeCancel, accountNumber, amount)
}

// QueryTransaction 查詢交易，不需加鎖
func (e *TransactionEngine) QueryTransaction(ctx context.Context, token string) (*domain.Transaction, error) {
	return e.getTransaction(ctx, token)
}

func validateUseBalance(member *domain.Member, account *domain.Account, amount int64) error {
	if member.ID != account.MemberID {
		return domain.ErrOwnershipMismatch
	}
	if !account.IsInUse() {
		return domain.ErrAccountAlreadyClosed
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if account.Balance < amount {
		return domain.ErrInsufficientBalance
	}
	return nil
}

func validateCancelBalance(original *domain.Transaction, account *domain.Account, amount int64, now time.Time) error {
	if original.AccountID != account.ID {
		return domain.ErrTransactionAccountMismatch
	}
	if !original.CanBeCancelled() {
		return domain.ErrTransactionNotCancellable
	}
	if original.Amount != amount {
		return domain.ErrPartialCancelNotAllowed
	}
	if !original.IsCancellable(now) {
		return domain.ErrCancellationWindowExpired
	}
	return nil
}

// ensureNotCancelled 同一筆 USE 只能取消一次；呼叫端持有帳號鎖，查詢與寫入之間不會插入其他取消
func (e *TransactionEngine) ensureNotCancelled(ctx context.Context, token string) error {
	_, err := e.ledger.FindCancellation(ctx, token)
	if err == nil {
		return domain.ErrTransactionAlreadyCancelled
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("find cancellation of %s: %w", token, err)
}

func (e *TransactionEngine) recordFailure(ctx context.Context, txType domain.TransactionType, accountNumber string, amount int64) (*domain.Transaction, error) {
	account, err := e.getAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	tran := domain.NewTransaction(txType, domain.TransactionResultFailed, account, amount, e.now())
	saved, err := e.ledger.Save(ctx, tran)
	if err != nil {
		return nil, fmt.Errorf("save failed %s transaction: %w", txType, err)
	}
	return saved, nil
}

// persist 更新餘額並寫入帳本，需在 WithinTransaction 內呼叫
func (e *TransactionEngine) persist(ctx context.Context, account *domain.Account, tran *domain.Transaction) (*domain.Transaction, error) {
	if _, err := e.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}
	saved, err := e.ledger.Save(ctx, tran)
	if err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}
	return saved, nil
}

func (e *TransactionEngine) getMember(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := e.members.FindByID(ctx, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member %d: %w", id, err)
	}
	return member, nil
}

func (e *TransactionEngine) getAccount(ctx context.Context, number string) (*domain.Account, error) {
	account, err := e.accounts.FindByNumber(ctx, number)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", number, err)
	}
	return account, nil
}

func (e *TransactionEngine) getTransaction(ctx context.Context, token string) (*domain.Transaction, error) {
	tran, err := e.ledger.FindByToken(ctx, token)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", token, err)
	}
	return tran, nil
}

func (e *TransactionEngine) startSpan(ctx context.Context, name, accountNumber string, amount int64) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("account.number", accountNumber),
		attribute.Int64("amount", amount),
	))
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		recordSpanError(span, *err)
	}
	span.End()
}
