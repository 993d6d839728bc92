package domain

import (
	"errors"
	"fmt"
)

// ErrorCode 業務錯誤代碼，transport 層依此對應回應狀態
type ErrorCode string

const (
	CodeInternalServerError         ErrorCode = "INTERNAL_SERVER_ERROR"
	CodeInvalidRequest              ErrorCode = "INVALID_REQUEST"
	CodeInvalidAmount               ErrorCode = "INVALID_AMOUNT"
	CodeMaxAccountPerUser           ErrorCode = "MAX_ACCOUNT_PER_USER_10"
	CodeUserNotFound                ErrorCode = "USER_NOT_FOUND"
	CodeAccountNotFound             ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeTransactionNotFound         ErrorCode = "TRANSACTION_NOT_FOUND"
	CodeAmountExceedBalance         ErrorCode = "AMOUNT_EXCEED_BALANCE"
	CodeUserAccountUnMatch          ErrorCode = "USER_ACCOUNT_UN_MATCH"
	CodeTransactionAccountUnMatch   ErrorCode = "TRANSACTION_ACCOUNT_UN_MATCH"
	CodeCancelMustFully             ErrorCode = "CANCEL_MUST_FULLY"
	CodeTooOldTransactionToCancel   ErrorCode = "TOO_OLD_TRANSACTION_TO_CANCEL"
	CodeTransactionNotCancellable   ErrorCode = "TRANSACTION_NOT_CANCELLABLE"
	CodeTransactionAlreadyCancelled ErrorCode = "TRANSACTION_ALREADY_CANCELLED"
	CodeAccountAlreadyUnregistered  ErrorCode = "ACCOUNT_ALREADY_UNREGISTERED"
	CodeBalanceNotEmpty             ErrorCode = "BALANCE_NOT_EMPTY"
	CodeAccountTransactionLock      ErrorCode = "ACCOUNT_TRANSACTION_LOCK"
)

// Error 可預期的業務錯誤 (非程式崩潰)
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is 以錯誤代碼比對，讓包裝過的同代碼錯誤也能被 errors.Is 辨識
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	// ErrMemberNotFound 找不到會員
	ErrMemberNotFound = newError(CodeUserNotFound, "member not found")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = newError(CodeAccountNotFound, "account not found")

	// ErrOwnershipMismatch 會員與帳戶持有人不符
	ErrOwnershipMismatch = newError(CodeUserAccountUnMatch, "account is not owned by member")

	// ErrAccountAlreadyClosed 帳戶已解約
	ErrAccountAlreadyClosed = newError(CodeAccountAlreadyUnregistered, "account already unregistered")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = newError(CodeAmountExceedBalance, "amount exceeds balance")

	// ErrTransactionNotFound 找不到交易
	ErrTransactionNotFound = newError(CodeTransactionNotFound, "transaction not found")

	// ErrTransactionAccountMismatch 交易不屬於該帳戶
	ErrTransactionAccountMismatch = newError(CodeTransactionAccountUnMatch, "transaction does not belong to account")

	// ErrPartialCancelNotAllowed 不允許部分取消
	ErrPartialCancelNotAllowed = newError(CodeCancelMustFully, "partial cancellation is not allowed")

	// ErrCancellationWindowExpired 超過一年的交易不可取消
	ErrCancellationWindowExpired = newError(CodeTooOldTransactionToCancel, "transaction older than one year cannot be cancelled")

	// ErrTransactionNotCancellable 只有成功的 USE 交易可被取消
	ErrTransactionNotCancellable = newError(CodeTransactionNotCancellable, "only a successful use transaction can be cancelled")

	// ErrTransactionAlreadyCancelled 交易已被取消過
	ErrTransactionAlreadyCancelled = newError(CodeTransactionAlreadyCancelled, "transaction already cancelled")

	// ErrInvalidAmount 金額不合法
	ErrInvalidAmount = newError(CodeInvalidAmount, "invalid amount")

	// ErrInvalidRequest 請求欄位不合法
	ErrInvalidRequest = newError(CodeInvalidRequest, "invalid request")

	// ErrLockAcquisition 帳戶正在處理其他交易
	ErrLockAcquisition = newError(CodeAccountTransactionLock, "account is busy with another transaction")

	// ErrMaxAccountsPerMember 每位會員最多 10 個帳戶
	ErrMaxAccountsPerMember = newError(CodeMaxAccountPerUser, "member already holds the maximum number of accounts")

	// ErrBalanceNotEmpty 有餘額的帳戶不可解約
	ErrBalanceNotEmpty = newError(CodeBalanceNotEmpty, "account with remaining balance cannot be unregistered")

	// ErrInternal 內部錯誤
	ErrInternal = newError(CodeInternalServerError, "internal server error")
)

// ErrRecordNotFound 儲存層找不到資料，由 usecase 轉成對應的業務錯誤
var ErrRecordNotFound = errors.New("record not found")

// AsError 取出錯誤鏈中的業務錯誤，非業務錯誤一律視為 ErrInternal
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal
}

// IsDomainError 判斷錯誤鏈中是否有業務錯誤
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
