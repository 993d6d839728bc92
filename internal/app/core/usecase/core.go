package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// UseBalanceCommand 使用餘額請求
type UseBalanceCommand struct {
	MemberID      int64
	AccountNumber string
	Amount        int64
}

func (c UseBalanceCommand) GetAccountNumber() string { return c.AccountNumber }

// CancelBalanceCommand 取消使用請求
type CancelBalanceCommand struct {
	TransactionToken string
	AccountNumber    string
	Amount           int64
}

func (c CancelBalanceCommand) GetAccountNumber() string { return c.AccountNumber }

// CreateAccountCommand 開戶請求
type CreateAccountCommand struct {
	MemberID       int64
	InitialBalance int64
}

// DeleteAccountCommand 解約請求
type DeleteAccountCommand struct {
	MemberID      int64
	AccountNumber string
}

func (c DeleteAccountCommand) GetAccountNumber() string { return c.AccountNumber }

// CoreUseCase 是核心業務邏輯層
//
// 所有會改變帳戶的操作都經過 WithAccountLock；使用/取消失敗時在釋放鎖之後補寫失敗紀錄，
// 呼叫端不需要自己處理。
type CoreUseCase struct {
	engine   *TransactionEngine
	accounts *AccountUseCase
	logger   *zap.Logger

	useBalance    func(context.Context, UseBalanceCommand) (*domain.Transaction, error)
	cancelBalance func(context.Context, CancelBalanceCommand) (*domain.Transaction, error)
	createAccount func(context.Context, CreateAccountCommand) (*domain.Account, error)
	deleteAccount func(context.Context, DeleteAccountCommand) (*domain.Account, error)
}

func NewCoreUseCase(engine *TransactionEngine, accounts *AccountUseCase, locks *LockCoordinator, logger *zap.Logger) *CoreUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoreUseCase{
		engine:   engine,
		accounts: accounts,
		logger:   logger,
		useBalance: WithAccountLock(locks, AccountNumberKey[UseBalanceCommand],
			func(ctx context.Context, cmd UseBalanceCommand) (*domain.Transaction, error) {
				return engine.UseBalance(ctx, cmd.MemberID, cmd.AccountNumber, cmd.Amount)
			}),
		cancelBalance: WithAccountLock(locks, AccountNumberKey[CancelBalanceCommand],
			func(ctx context.Context, cmd CancelBalanceCommand) (*domain.Transaction, error) {
				return engine.CancelBalance(ctx, cmd.TransactionToken, cmd.AccountNumber, cmd.Amount)
			}),
		createAccount: WithAccountLock(locks, StaticKey[CreateAccountCommand](AccountSequenceLockKey),
			func(ctx context.Context, cmd CreateAccountCommand) (*domain.Account, error) {
				return accounts.CreateAccount(ctx, cmd.MemberID, cmd.InitialBalance)
			}),
		deleteAccount: WithAccountLock(locks, AccountNumberKey[DeleteAccountCommand],
			func(ctx context.Context, cmd DeleteAccountCommand) (*domain.Account, error) {
				return accounts.DeleteAccount(ctx, cmd.MemberID, cmd.AccountNumber)
			}),
	}
}

// UseBalance 使用餘額，失敗時補寫 FAILED/USE 紀錄並回傳原本的錯誤
func (c *CoreUseCase) UseBalance(ctx context.Context, cmd UseBalanceCommand) (*domain.Transaction, error) {
	tran, err := c.useBalance(ctx, cmd)
	if err != nil {
		c.compensate(ctx, err, "use", cmd.AccountNumber, cmd.Amount, c.engine.RecordFailedUse)
		return nil, err
	}
	return tran, nil
}

// CancelBalance 取消使用，失敗時補寫 FAILED/CANCEL 紀錄並回傳原本的錯誤
func (c *CoreUseCase) CancelBalance(ctx context.Context, cmd CancelBalanceCommand) (*domain.Transaction, error) {
	tran, err := c.cancelBalance(ctx, cmd)
	if err != nil {
		c.compensate(ctx, err, "cancel", cmd.AccountNumber, cmd.Amount, c.engine.RecordFailedCancel)
		return nil, err
	}
	return tran, nil
}

// QueryTransaction 查詢交易
func (c *CoreUseCase) QueryTransaction(ctx context.Context, token string) (*domain.Transaction, error) {
	return c.engine.QueryTransaction(ctx, token)
}

// CreateAccount 開戶
func (c *CoreUseCase) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*domain.Account, error) {
	return c.createAccount(ctx, cmd)
}

// DeleteAccount 解約
func (c *CoreUseCase) DeleteAccount(ctx context.Context, cmd DeleteAccountCommand) (*domain.Account, error) {
	return c.deleteAccount(ctx, cmd)
}

// ListAccounts 列出會員帳戶
func (c *CoreUseCase) ListAccounts(ctx context.Context, memberID int64) ([]*domain.Account, error) {
	return c.accounts.ListAccounts(ctx, memberID)
}

// compensate 在鎖外補寫失敗紀錄；只處理業務錯誤，補寫失敗只記 log 不覆蓋原錯誤
func (c *CoreUseCase) compensate(
	ctx context.Context,
	cause error,
	op string,
	accountNumber string,
	amount int64,
	record func(context.Context, string, int64) (*domain.Transaction, error),
) {
	if !domain.IsDomainError(cause) {
		return
	}
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("account_number", accountNumber),
		zap.Int64("amount", amount),
		zap.String("code", string(domain.AsError(cause).Code)),
	}
	c.logger.Warn("balance operation failed", fields...)

	// 請求被取消也要留下稽核紀錄
	failed, err := record(context.WithoutCancel(ctx), accountNumber, amount)
	if err != nil {
		c.logger.Error("failed to record failed transaction", append(fields, zap.Error(err))...)
		return
	}
	c.logger.Debug("failed transaction recorded", append(fields, zap.String("transaction_id", failed.Token))...)
}
