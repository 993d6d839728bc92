package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/pkg/logger"
	"github.com/JoeShih716/go-quickpay/pkg/mysql"
	"github.com/JoeShih716/go-quickpay/pkg/redis"
)

// PathEnv 覆寫設定檔路徑的環境變數
const PathEnv = "QUICKPAY_CONFIG"

// DefaultPath 預設設定檔路徑
const DefaultPath = "config/config.yaml"

const (
	BackendMySQL  = "mysql"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	GRPC    GRPCConfig    `yaml:"grpc"`
	Log     logger.Config `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	MySQL   mysql.Config  `yaml:"mysql"`
	Redis   redis.Config  `yaml:"redis"`
	Lock    LockConfig    `yaml:"lock"`
}

type GRPCConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig 帳戶與帳本的儲存方式
type StorageConfig struct {
	Backend        string         `yaml:"backend"`          // mysql | memory
	WALPath        string         `yaml:"wal_path"`         // memory 使用，空字串表示不持久化
	CompactOnStart bool           `yaml:"compact_on_start"` // 啟動重放後以目前資料重寫 WAL
	Members        []MemberConfig `yaml:"members"`          // 啟動時寫入的會員
}

type MemberConfig struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// LockConfig 帳戶鎖設定
type LockConfig struct {
	Backend    string        `yaml:"backend"` // redis | memory
	Wait       time.Duration `yaml:"wait"`
	Lease      time.Duration `yaml:"lease"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// Path 回傳設定檔路徑，優先使用 QUICKPAY_CONFIG
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load 讀取 yaml 設定檔並補上預設值
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 yaml 內容並補上預設值
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GRPC.Addr == "" {
		c.GRPC.Addr = ":50051"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendMySQL
	}
	if c.Lock.Backend == "" {
		c.Lock.Backend = BackendRedis
	}
	if c.Lock.Wait == 0 {
		c.Lock.Wait = time.Second
	}
	if c.Lock.Lease == 0 {
		c.Lock.Lease = 5 * time.Second
	}
	if c.Lock.RetryDelay == 0 {
		c.Lock.RetryDelay = 50 * time.Millisecond
	}

	// 補全 MySQL 預設配置 (如果 yaml 沒寫)
	if c.MySQL.Port == 0 {
		c.MySQL.Port = 3306
	}
	if c.MySQL.MaxOpenConns == 0 {
		c.MySQL.MaxOpenConns = 100
	}
	if c.MySQL.MaxIdleConns == 0 {
		c.MySQL.MaxIdleConns = 10
	}
	if c.MySQL.ConnMaxLifetime == 0 {
		c.MySQL.ConnMaxLifetime = 30 * time.Minute
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 50
	}
	if c.Redis.DialTimeout == 0 {
		c.Redis.DialTimeout = 5 * time.Second
	}
}

// Validate 檢查列舉值與鎖的時間設定
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMySQL, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Lock.Backend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown lock backend %q", c.Lock.Backend)
	}
	if c.Lock.Wait < 0 || c.Lock.Lease < 0 || c.Lock.RetryDelay < 0 {
		return fmt.Errorf("lock durations must not be negative")
	}
	if c.Lock.Lease < c.Lock.Wait {
		return fmt.Errorf("lock lease %s shorter than wait %s", c.Lock.Lease, c.Lock.Wait)
	}
	return nil
}

// DomainMembers 轉成 domain 會員
func (s StorageConfig) DomainMembers() []*domain.Member {
	out := make([]*domain.Member, 0, len(s.Members))
	for _, m := range s.Members {
		out = append(out, &domain.Member{ID: m.ID, Name: m.Name})
	}
	return out
}
