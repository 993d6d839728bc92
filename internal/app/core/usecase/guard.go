package usecase

import "context"

// AccountSequenceLockKey 配發帳號時使用的固定鎖
const AccountSequenceLockKey = "account-sequence"

// AccountLockID 帶有帳號的請求
type AccountLockID interface {
	GetAccountNumber() string
}

// AccountNumberKey 以請求中的帳號作為鎖的 key
func AccountNumberKey[Req AccountLockID](req Req) string {
	return req.GetAccountNumber()
}

// StaticKey 不論請求內容都使用同一把鎖
func StaticKey[Req any](key string) func(Req) string {
	return func(Req) string { return key }
}

// WithAccountLock 包裝 op：先以 keyOf(req) 取得鎖再執行，不論成功、業務錯誤或 panic 都會釋放。
// 本身不做任何業務檢查。
func WithAccountLock[Req, Res any](
	locks *LockCoordinator,
	keyOf func(Req) string,
	op func(ctx context.Context, req Req) (Res, error),
) func(ctx context.Context, req Req) (Res, error) {
	return func(ctx context.Context, req Req) (Res, error) {
		var zero Res
		handle, err := locks.Lock(ctx, keyOf(req))
		if err != nil {
			return zero, err
		}
		// Unlock 的錯誤已在 coordinator 記錄，不覆蓋 op 的結果
		defer func() { _ = locks.Unlock(ctx, handle) }()

		return op(ctx, req)
	}
}
