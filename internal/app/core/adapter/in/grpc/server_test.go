package grpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	grpcadapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-quickpay/proto"
)

func newClient(t *testing.T) pb.LedgerServiceClient {
	t.Helper()
	return pb.NewLedgerServiceClient(newConn(t))
}

// newConn 以 bufconn 啟動完整的 server (memory store + memory lock)
func newConn(t *testing.T) *grpc.ClientConn {
	t.Helper()
	store, err := memory.NewStore(nil,
		&domain.Member{ID: 1, Name: "alice"},
		&domain.Member{ID: 2, Name: "bob"},
	)
	require.NoError(t, err)

	locks := usecase.NewLockCoordinator(memory.NewLockService(time.Millisecond), usecase.DefaultLockOptions(), nil)
	engine := usecase.NewTransactionEngine(store.Members(), store.Accounts(), store.Ledger(), store)
	accounts := usecase.NewAccountUseCase(store.Members(), store.Accounts(), usecase.NewAccountNumberAllocator(store.Accounts()))
	core := usecase.NewCoreUseCase(engine, accounts, locks, nil)

	logger := zap.NewNop()
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcadapter.UnaryRecoveryInterceptor(logger),
		grpcadapter.UnaryLoggingInterceptor(logger),
	))
	pb.RegisterLedgerServiceServer(srv, grpcadapter.NewServer(core))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func assertStatus(t *testing.T, err error, code codes.Code, reason domain.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), err.Error())
	assert.Equal(t, reason, grpcadapter.ErrorCode(err))
}

func TestServer_BalanceFlow(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{UserId: 1, InitialBalance: 1000})
	require.NoError(t, err)
	number := created.GetAccount().GetAccountNumber()
	assert.Equal(t, "1000000000", number)
	assert.Equal(t, "IN_USE", created.GetAccount().Status)
	assert.NotNil(t, created.GetAccount().RegisteredAt)

	used, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: number, Amount: 400})
	require.NoError(t, err)
	tran := used.GetTransaction()
	assert.Len(t, tran.GetTransactionId(), 32)
	assert.Equal(t, "USE", tran.Type)
	assert.Equal(t, "SUCCESS", tran.GetResult())
	assert.EqualValues(t, 600, tran.GetBalanceSnapshot())

	queried, err := client.QueryTransaction(ctx, &pb.QueryTransactionRequest{TransactionId: tran.TransactionId})
	require.NoError(t, err)
	assert.Equal(t, tran.TransactionId, queried.GetTransaction().TransactionId)
	assert.Equal(t, tran.TransactedAt.AsTime(), queried.GetTransaction().TransactedAt.AsTime())

	cancelled, err := client.CancelBalance(ctx, &pb.CancelBalanceRequest{
		TransactionId: tran.TransactionId,
		AccountNumber: number,
		Amount:        400,
	})
	require.NoError(t, err)
	assert.Equal(t, "CANCEL", cancelled.GetTransaction().Type)
	assert.EqualValues(t, 1000, cancelled.GetTransaction().GetBalanceSnapshot())

	_, err = client.CancelBalance(ctx, &pb.CancelBalanceRequest{
		TransactionId: tran.TransactionId,
		AccountNumber: number,
		Amount:        400,
	})
	assertStatus(t, err, codes.FailedPrecondition, domain.CodeTransactionAlreadyCancelled)

	_, err = client.CancelBalance(ctx, &pb.CancelBalanceRequest{
		TransactionId: cancelled.GetTransaction().GetTransactionId(),
		AccountNumber: number,
		Amount:        400,
	})
	assertStatus(t, err, codes.FailedPrecondition, domain.CodeTransactionNotCancellable)

	listed, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{UserId: 1})
	require.NoError(t, err)
	require.Len(t, listed.GetAccounts(), 1)
	assert.EqualValues(t, 1000, listed.GetAccounts()[0].GetBalance())
}

func TestServer_DomainErrors(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{UserId: 1, InitialBalance: 100})
	require.NoError(t, err)
	number := created.GetAccount().GetAccountNumber()

	_, err = client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 2, AccountNumber: number, Amount: 50})
	assertStatus(t, err, codes.PermissionDenied, domain.CodeUserAccountUnMatch)

	_, err = client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: number, Amount: 500})
	assertStatus(t, err, codes.FailedPrecondition, domain.CodeAmountExceedBalance)

	_, err = client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 9, AccountNumber: number, Amount: 50})
	assertStatus(t, err, codes.NotFound, domain.CodeUserNotFound)

	_, err = client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: "1999999999", Amount: 50})
	assertStatus(t, err, codes.NotFound, domain.CodeAccountNotFound)

	_, err = client.QueryTransaction(ctx, &pb.QueryTransactionRequest{TransactionId: "missing"})
	assertStatus(t, err, codes.NotFound, domain.CodeTransactionNotFound)

	_, err = client.DeleteAccount(ctx, &pb.DeleteAccountRequest{UserId: 1, AccountNumber: number})
	assertStatus(t, err, codes.FailedPrecondition, domain.CodeBalanceNotEmpty)

	used, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: number, Amount: 100})
	require.NoError(t, err)
	_, err = client.CancelBalance(ctx, &pb.CancelBalanceRequest{
		TransactionId: used.GetTransaction().GetTransactionId(),
		AccountNumber: number,
		Amount:        50,
	})
	assertStatus(t, err, codes.FailedPrecondition, domain.CodeCancelMustFully)

	deleted, err := client.DeleteAccount(ctx, &pb.DeleteAccountRequest{UserId: 1, AccountNumber: number})
	require.NoError(t, err)
	assert.Equal(t, "UNREGISTERED", deleted.GetAccount().Status)
	assert.NotNil(t, deleted.GetAccount().UnregisteredAt)
}

func TestServer_Validation(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"use: amount below minimum", func() error {
			_, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: "1000000000", Amount: 9})
			return err
		}},
		{"use: amount above maximum", func() error {
			_, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: "1000000000", Amount: 1_000_000_001})
			return err
		}},
		{"use: short account number", func() error {
			_, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 1, AccountNumber: "12345", Amount: 100})
			return err
		}},
		{"use: user id", func() error {
			_, err := client.UseBalance(ctx, &pb.UseBalanceRequest{UserId: 0, AccountNumber: "1000000000", Amount: 100})
			return err
		}},
		{"cancel: missing transaction id", func() error {
			_, err := client.CancelBalance(ctx, &pb.CancelBalanceRequest{AccountNumber: "1000000000", Amount: 100})
			return err
		}},
		{"query: missing transaction id", func() error {
			_, err := client.QueryTransaction(ctx, &pb.QueryTransactionRequest{})
			return err
		}},
		{"create: initial balance below minimum", func() error {
			_, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{UserId: 1, InitialBalance: 99})
			return err
		}},
		{"delete: non numeric account number", func() error {
			_, err := client.DeleteAccount(ctx, &pb.DeleteAccountRequest{UserId: 1, AccountNumber: "10000abcde"})
			return err
		}},
		{"list: user id", func() error {
			_, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStatus(t, tt.call(), codes.InvalidArgument, domain.CodeInvalidRequest)
		})
	}
}

func TestUnaryRecoveryInterceptor(t *testing.T) {
	interceptor := grpcadapter.UnaryRecoveryInterceptor(zap.NewNop())
	info := &grpc.UnaryServerInfo{FullMethod: pb.LedgerService_UseBalance_FullMethodName}

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	resp, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestErrorCode_WithoutDetails(t *testing.T) {
	assert.Empty(t, grpcadapter.ErrorCode(nil))
	assert.Empty(t, grpcadapter.ErrorCode(status.Error(codes.Unavailable, "down")))
}

// 只依 ledger.proto 描述建立的客戶端 (不使用本專案的 Go 型別) 也能以預設 proto codec 呼叫
func TestServer_DescriptorOnlyClient(t *testing.T) {
	conn := newConn(t)
	ctx := context.Background()

	svc, err := protoregistry.GlobalFiles.FindDescriptorByName("quickpay.LedgerService")
	require.NoError(t, err)
	method := svc.(protoreflect.ServiceDescriptor).Methods().ByName("CreateAccount")
	require.NotNil(t, method)

	req := dynamicpb.NewMessage(method.Input())
	req.Set(method.Input().Fields().ByName("user_id"), protoreflect.ValueOfInt64(1))
	req.Set(method.Input().Fields().ByName("initial_balance"), protoreflect.ValueOfInt64(500))
	res := dynamicpb.NewMessage(method.Output())

	require.NoError(t, conn.Invoke(ctx, pb.LedgerService_CreateAccount_FullMethodName, req, res))

	account := res.Get(method.Output().Fields().ByName("account")).Message()
	fields := account.Descriptor().Fields()
	assert.EqualValues(t, 500, account.Get(fields.ByName("balance")).Int())
	assert.Len(t, account.Get(fields.ByName("account_number")).String(), 10)

	// 以標準 proto 編碼的位元組能還原成產生的型別
	data, err := proto.Marshal(res)
	require.NoError(t, err)
	var decoded pb.CreateAccountResponse
	require.NoError(t, proto.Unmarshal(data, &decoded))
	assert.EqualValues(t, 500, decoded.GetAccount().GetBalance())
	assert.Equal(t, "IN_USE", decoded.GetAccount().GetStatus())
}
