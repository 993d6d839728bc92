package redis

import "time"

// Config 定義 Redis 連線配置
type Config struct {
	Addr     string `yaml:"addr"`     // 主機地址 (host:port)
	Password string `yaml:"password"` // 密碼
	DB       int    `yaml:"db"`       // DB 編號

	// 連線池設定
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
}
