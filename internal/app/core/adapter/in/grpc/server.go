package grpc

import (
	"context"

	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-quickpay/proto"
)

// Server LedgerService 的 gRPC 實作，只負責欄位檢查與格式轉換
type Server struct {
	pb.UnimplementedLedgerServiceServer
	core     *usecase.CoreUseCase
	validate *validator.Validate
}

func NewServer(core *usecase.CoreUseCase) *Server {
	return &Server{
		core:     core,
		validate: newValidator(),
	}
}

func (s *Server) UseBalance(ctx context.Context, req *pb.UseBalanceRequest) (*pb.UseBalanceResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.core.UseBalance(ctx, usecase.UseBalanceCommand{
		MemberID:      req.UserId,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UseBalanceResponse{Transaction: toPBTransaction(tran)}, nil
}

func (s *Server) CancelBalance(ctx context.Context, req *pb.CancelBalanceRequest) (*pb.CancelBalanceResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.core.CancelBalance(ctx, usecase.CancelBalanceCommand{
		TransactionToken: req.TransactionId,
		AccountNumber:    req.AccountNumber,
		Amount:           req.Amount,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelBalanceResponse{Transaction: toPBTransaction(tran)}, nil
}

func (s *Server) QueryTransaction(ctx context.Context, req *pb.QueryTransactionRequest) (*pb.QueryTransactionResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.core.QueryTransaction(ctx, req.TransactionId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.QueryTransactionResponse{Transaction: toPBTransaction(tran)}, nil
}

func (s *Server) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	account, err := s.core.CreateAccount(ctx, usecase.CreateAccountCommand{
		MemberID:       req.UserId,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateAccountResponse{Account: toPBAccount(account)}, nil
}

func (s *Server) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	account, err := s.core.DeleteAccount(ctx, usecase.DeleteAccountCommand{
		MemberID:      req.UserId,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteAccountResponse{Account: toPBAccount(account)}, nil
}

func (s *Server) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	accounts, err := s.core.ListAccounts(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Account, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toPBAccount(account))
	}
	return &pb.ListAccountsResponse{Accounts: out}, nil
}

func toPBTransaction(t *domain.Transaction) *pb.Transaction {
	return &pb.Transaction{
		TransactionId:   t.Token,
		Type:            string(t.Type),
		Result:          string(t.Result),
		AccountNumber:   t.AccountNumber,
		Amount:          t.Amount,
		BalanceSnapshot: t.BalanceSnapshot,
		TransactedAt:    timestamppb.New(t.TransactedAt),
	}
}

func toPBAccount(a *domain.Account) *pb.Account {
	out := &pb.Account{
		AccountNumber: a.Number,
		UserId:        a.MemberID,
		Status:        string(a.Status),
		Balance:       a.Balance,
		RegisteredAt:  timestamppb.New(a.RegisteredAt),
	}
	if a.UnregisteredAt != nil {
		out.UnregisteredAt = timestamppb.New(*a.UnregisteredAt)
	}
	return out
}

var _ pb.LedgerServiceServer = (*Server)(nil)
