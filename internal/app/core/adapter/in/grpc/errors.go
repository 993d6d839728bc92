package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
)

// ErrorDomain ErrorInfo.Domain 的值
const ErrorDomain = "quickpay"

// statusCodes 業務錯誤代碼對應的 gRPC 狀態碼
var statusCodes = map[domain.ErrorCode]codes.Code{
	domain.CodeInvalidRequest:              codes.InvalidArgument,
	domain.CodeInvalidAmount:               codes.InvalidArgument,
	domain.CodeUserNotFound:                codes.NotFound,
	domain.CodeAccountNotFound:             codes.NotFound,
	domain.CodeTransactionNotFound:         codes.NotFound,
	domain.CodeUserAccountUnMatch:          codes.PermissionDenied,
	domain.CodeTransactionAccountUnMatch:   codes.FailedPrecondition,
	domain.CodeAccountAlreadyUnregistered:  codes.FailedPrecondition,
	domain.CodeAmountExceedBalance:         codes.FailedPrecondition,
	domain.CodeCancelMustFully:             codes.FailedPrecondition,
	domain.CodeTooOldTransactionToCancel:   codes.FailedPrecondition,
	domain.CodeTransactionNotCancellable:   codes.FailedPrecondition,
	domain.CodeTransactionAlreadyCancelled: codes.FailedPrecondition,
	domain.CodeBalanceNotEmpty:             codes.FailedPrecondition,
	domain.CodeMaxAccountPerUser:           codes.ResourceExhausted,
	domain.CodeAccountTransactionLock:      codes.Aborted,
	domain.CodeInternalServerError:         codes.Internal,
}

// toStatus 把 usecase 回傳的錯誤轉成 gRPC status，業務代碼放在 ErrorInfo.Reason
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	derr := domain.AsError(err)
	code, ok := statusCodes[derr.Code]
	if !ok {
		code = codes.Internal
	}
	st := status.New(code, derr.Message)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(derr.Code),
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ErrorCode 從 gRPC 錯誤取出業務錯誤代碼，沒有 ErrorInfo 時回傳空字串
func ErrorCode(err error) domain.ErrorCode {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return domain.ErrorCode(info.GetReason())
		}
	}
	return ""
}
