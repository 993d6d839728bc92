package grpc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	pb "github.com/JoeShih716/go-quickpay/proto"
)

// 以下輸入結構只承載欄位限制，欄位名稱與 proto 一致，方便錯誤訊息對照

type useBalanceInput struct {
	UserID        int64  `json:"user_id" validate:"gte=1"`
	AccountNumber string `json:"account_number" validate:"len=10,numeric"`
	Amount        int64  `json:"amount" validate:"gte=10,lte=1000000000"`
}

type cancelBalanceInput struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	AccountNumber string `json:"account_number" validate:"len=10,numeric"`
	Amount        int64  `json:"amount" validate:"gte=10,lte=1000000000"`
}

type queryTransactionInput struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

type createAccountInput struct {
	UserID         int64 `json:"user_id" validate:"gte=1"`
	InitialBalance int64 `json:"initial_balance" validate:"gte=100"`
}

type deleteAccountInput struct {
	UserID        int64  `json:"user_id" validate:"gte=1"`
	AccountNumber string `json:"account_number" validate:"len=10,numeric"`
}

type listAccountsInput struct {
	UserID int64 `json:"user_id" validate:"gte=1"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// inputOf 將 proto 請求轉成帶限制的輸入結構
func inputOf(req any) (any, error) {
	switch r := req.(type) {
	case *pb.UseBalanceRequest:
		return &useBalanceInput{UserID: r.GetUserId(), AccountNumber: r.GetAccountNumber(), Amount: r.GetAmount()}, nil
	case *pb.CancelBalanceRequest:
		return &cancelBalanceInput{TransactionID: r.GetTransactionId(), AccountNumber: r.GetAccountNumber(), Amount: r.GetAmount()}, nil
	case *pb.QueryTransactionRequest:
		return &queryTransactionInput{TransactionID: r.GetTransactionId()}, nil
	case *pb.CreateAccountRequest:
		return &createAccountInput{UserID: r.GetUserId(), InitialBalance: r.GetInitialBalance()}, nil
	case *pb.DeleteAccountRequest:
		return &deleteAccountInput{UserID: r.GetUserId(), AccountNumber: r.GetAccountNumber()}, nil
	case *pb.ListAccountsRequest:
		return &listAccountsInput{UserID: r.GetUserId()}, nil
	}
	return nil, fmt.Errorf("validate request: unsupported type %T", req)
}

// validateRequest 欄位檢查失敗一律回傳 INVALID_REQUEST，訊息列出違規欄位
func (s *Server) validateRequest(req any) error {
	in, err := inputOf(req)
	if err != nil {
		return err
	}
	err = s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return &domain.Error{
		Code:    domain.CodeInvalidRequest,
		Message: strings.Join(fields, "; "),
	}
}
