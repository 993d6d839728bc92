package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpc_adapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	pkggrpc "github.com/JoeShih716/go-quickpay/pkg/grpc"
	pb "github.com/JoeShih716/go-quickpay/proto"
)

const (
	Target         = "localhost:50051"
	UserID         = 1
	InitialBalance = 10000
	Amount         = 300
	TotalCount     = 2000
	Concurrency    = 100
)

// 對同一個帳戶同時送出大量扣款，檢查成功筆數與最終餘額是否一致
func main() {
	pool := pkggrpc.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	created, err := c.CreateAccount(ctx, &pb.CreateAccountRequest{UserId: UserID, InitialBalance: InitialBalance})
	if err != nil {
		log.Fatalf("create account failed: %v", err)
	}
	accountNumber := created.GetAccount().GetAccountNumber()
	log.Printf("created account %s with balance %d", accountNumber, InitialBalance)

	var (
		success      atomic.Int64
		insufficient atomic.Int64
		busy         atomic.Int64
		others       atomic.Int64
	)

	var wg sync.WaitGroup
	wg.Add(TotalCount)
	sem := make(chan struct{}, Concurrency)
	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := c.UseBalance(ctx, &pb.UseBalanceRequest{
				UserId:        UserID,
				AccountNumber: accountNumber,
				Amount:        Amount,
			})
			switch {
			case err == nil:
				success.Add(1)
			case grpc_adapter.ErrorCode(err) == domain.CodeAmountExceedBalance:
				insufficient.Add(1)
			case status.Code(err) == codes.Aborted:
				busy.Add(1)
			default:
				others.Add(1)
				if idx%100 == 0 {
					log.Printf("UseBalance %d failed: %v", idx, err)
				}
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	listed, err := c.ListAccounts(ctx, &pb.ListAccountsRequest{UserId: UserID})
	if err != nil {
		log.Fatalf("list accounts failed: %v", err)
	}
	var balance int64 = -1
	for _, account := range listed.GetAccounts() {
		if account.GetAccountNumber() == accountNumber {
			balance = account.GetBalance()
		}
	}

	fmt.Printf("Completed %d requests in %v\n", TotalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())
	fmt.Printf("success=%d insufficient=%d busy=%d others=%d\n",
		success.Load(), insufficient.Load(), busy.Load(), others.Load())

	expected := InitialBalance - success.Load()*Amount
	fmt.Printf("final balance=%d expected=%d\n", balance, expected)
	if balance != expected {
		log.Fatalf("balance mismatch: got %d, want %d", balance, expected)
	}
}
