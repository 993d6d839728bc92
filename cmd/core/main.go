package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/mysql"
	redis_adapter "github.com/JoeShih716/go-quickpay/internal/app/core/adapter/out/redis"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	"github.com/JoeShih716/go-quickpay/internal/config"
	"github.com/JoeShih716/go-quickpay/pkg/logger"
	"github.com/JoeShih716/go-quickpay/pkg/mysql"
	"github.com/JoeShih716/go-quickpay/pkg/redis"
	"github.com/JoeShih716/go-quickpay/pkg/wal"
	pb "github.com/JoeShih716/go-quickpay/proto"
)

// stores usecase 需要的資料表，依 storage.backend 決定實作
type stores struct {
	members    usecase.MemberStore
	accounts   usecase.AccountStore
	ledger     usecase.LedgerStore
	transactor usecase.Transactor
	close      func()
}

func main() {
	// 1. 載入設定
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()

	// 2. 初始化儲存層 (Driven Adapter)
	st := newStores(cfg, zl)
	defer st.close()

	// 3. 初始化分散式鎖
	lockService, closeLock := newLockService(cfg, zl)
	defer closeLock()
	locks := usecase.NewLockCoordinator(lockService, usecase.LockOptions{
		Wait:  cfg.Lock.Wait,
		Lease: cfg.Lock.Lease,
	}, zl)

	// 4. 初始化 UseCase
	engine := usecase.NewTransactionEngine(st.members, st.accounts, st.ledger, st.transactor)
	accounts := usecase.NewAccountUseCase(st.members, st.accounts, usecase.NewAccountNumberAllocator(st.accounts))
	coreUseCase := usecase.NewCoreUseCase(engine, accounts, locks, zl)

	// 5. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewServer(coreUseCase)

	// 6. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		zl.Fatal("failed to listen", zap.String("addr", cfg.GRPC.Addr), zap.Error(err))
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpc_adapter.UnaryRecoveryInterceptor(zl),
		grpc_adapter.UnaryLoggingInterceptor(zl),
	))
	pb.RegisterLedgerServiceServer(s, grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	reflection.Register(s) // 方便 grpcurl 等工具直接呼叫
	healthServer.SetServingStatus(pb.LedgerService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// Graceful Shutdown
	go func() {
		zl.Info("starting grpc server",
			zap.String("addr", cfg.GRPC.Addr),
			zap.String("storage", cfg.Storage.Backend),
			zap.String("lock", cfg.Lock.Backend))
		if err := s.Serve(lis); err != nil {
			zl.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	healthServer.Shutdown()
	s.GracefulStop()
	zl.Info("server exited")
}

func newStores(cfg config.Config, zl *zap.Logger) stores {
	members := cfg.Storage.DomainMembers()

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		var walFile *wal.WAL
		if cfg.Storage.WALPath != "" {
			if err := os.MkdirAll(filepath.Dir(cfg.Storage.WALPath), 0o755); err != nil {
				zl.Fatal("failed to create wal directory", zap.Error(err))
			}
			w, err := wal.Open(cfg.Storage.WALPath)
			if err != nil {
				zl.Fatal("failed to init wal", zap.String("path", cfg.Storage.WALPath), zap.Error(err))
			}
			walFile = w
		}
		store, err := memory_adapter.NewStore(walFile, members...)
		if err != nil {
			zl.Fatal("failed to init memory store", zap.Error(err))
		}
		if cfg.Storage.CompactOnStart {
			if err := store.Compact(); err != nil {
				zl.Fatal("failed to compact wal", zap.Error(err))
			}
		}
		zl.Info("memory store ready", zap.String("wal", cfg.Storage.WALPath), zap.Int("members", len(members)))
		return stores{
			members:    store.Members(),
			accounts:   store.Accounts(),
			ledger:     store.Ledger(),
			transactor: store,
			close: func() {
				if walFile != nil {
					_ = walFile.Close()
				}
			},
		}
	default:
		dbClient, err := mysql.NewClient(cfg.MySQL, zl)
		if err != nil {
			zl.Fatal("failed to connect to mysql", zap.Error(err))
		}
		store := mysql_adapter.NewStore(dbClient)
		ctx := context.Background()
		if err := store.Migrate(ctx); err != nil {
			zl.Fatal("failed to migrate schema", zap.Error(err))
		}
		if err := store.SeedMembers(ctx, members...); err != nil {
			zl.Fatal("failed to seed members", zap.Error(err))
		}
		zl.Info("connected to mysql", zap.String("host", cfg.MySQL.Host), zap.String("db", cfg.MySQL.DBName))
		return stores{
			members:    store.Members(),
			accounts:   store.Accounts(),
			ledger:     store.Ledger(),
			transactor: store,
			close:      func() { _ = dbClient.Close() },
		}
	}
}

func newLockService(cfg config.Config, zl *zap.Logger) (usecase.LockService, func()) {
	if cfg.Lock.Backend == config.BackendMemory {
		zl.Warn("using in-process lock service, do not run more than one instance")
		return memory_adapter.NewLockService(cfg.Lock.RetryDelay), func() {}
	}
	client, err := redis.NewClient(cfg.Redis, zl)
	if err != nil {
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}
	zl.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	return redis_adapter.NewLockService(client.Redis(), cfg.Lock.RetryDelay, zl), func() { _ = client.Close() }
}
