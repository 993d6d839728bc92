package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// AccountUseCase 帳戶開戶、解約與查詢
type AccountUseCase struct {
	members   MemberStore
	accounts  AccountStore
	allocator *AccountNumberAllocator
	now       func() time.Time
}

func NewAccountUseCase(members MemberStore, accounts AccountStore, allocator *AccountNumberAllocator) *AccountUseCase {
	return &AccountUseCase{
		members:   members,
		accounts:  accounts,
		allocator: allocator,
		now:       time.Now,
	}
}

// CreateAccount 開戶
//
// 呼叫端需持有 AccountSequenceLockKey，避免同時配發到相同帳號
func (u *AccountUseCase) CreateAccount(ctx context.Context, memberID int64, initialBalance int64) (*domain.Account, error) {
	if _, err := u.getMember(ctx, memberID); err != nil {
		return nil, err
	}
	if initialBalance < 0 {
		return nil, domain.ErrInvalidAmount
	}

	count, err := u.accounts.CountByOwner(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("count accounts of member %d: %w", memberID, err)
	}
	if count >= domain.MaxAccountsPerMember {
		return nil, domain.ErrMaxAccountsPerMember
	}

	number, err := u.allocator.Next(ctx)
	if err != nil {
		return nil, err
	}
	account, err := domain.NewAccount(memberID, number, initialBalance, u.now())
	if err != nil {
		return nil, err
	}
	saved, err := u.accounts.Save(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}
	return saved, nil
}

// DeleteAccount 解約，餘額必須為 0。呼叫端需持有該帳號的鎖
func (u *AccountUseCase) DeleteAccount(ctx context.Context, memberID int64, accountNumber string) (*domain.Account, error) {
	member, err := u.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	account, err := u.accounts.FindByNumber(ctx, accountNumber)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", accountNumber, err)
	}
	if account.MemberID != member.ID {
		return nil, domain.ErrOwnershipMismatch
	}
	if err := account.Unregister(u.now()); err != nil {
		return nil, err
	}

	saved, err := u.accounts.Save(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}
	return saved, nil
}

// ListAccounts 列出會員的帳戶，不需加鎖
func (u *AccountUseCase) ListAccounts(ctx context.Context, memberID int64) ([]*domain.Account, error) {
	if _, err := u.getMember(ctx, memberID); err != nil {
		return nil, err
	}
	accounts, err := u.accounts.FindByOwner(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("find accounts of member %d: %w", memberID, err)
	}
	return accounts, nil
}

func (u *AccountUseCase) getMember(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := u.members.FindByID(ctx, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member %d: %w", id, err)
	}
	return member, nil
}
