package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.GRPC.Addr)
	assert.Equal(t, BackendMySQL, cfg.Storage.Backend)
	assert.Equal(t, BackendRedis, cfg.Lock.Backend)
	assert.Equal(t, time.Second, cfg.Lock.Wait)
	assert.Equal(t, 5*time.Second, cfg.Lock.Lease)
	assert.Equal(t, 50*time.Millisecond, cfg.Lock.RetryDelay)
	assert.Equal(t, 3306, cfg.MySQL.Port)
	assert.Equal(t, 100, cfg.MySQL.MaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestParse_Values(t *testing.T) {
	cfg, err := Parse([]byte(`
grpc:
  addr: ":6000"
log:
  level: debug
  format: console
storage:
  backend: memory
  wal_path: data/wal.log
  compact_on_start: true
  members:
    - id: 1
      name: alice
    - id: 2
      name: bob
mysql:
  host: db
  db_name: quickpay
lock:
  backend: memory
  wait: 500ms
  lease: 3s
`))
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.GRPC.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "data/wal.log", cfg.Storage.WALPath)
	assert.True(t, cfg.Storage.CompactOnStart)
	assert.Equal(t, "db", cfg.MySQL.Host)
	assert.Equal(t, "quickpay", cfg.MySQL.DBName)
	assert.Equal(t, 500*time.Millisecond, cfg.Lock.Wait)
	assert.Equal(t, 3*time.Second, cfg.Lock.Lease)

	members := cfg.Storage.DomainMembers()
	require.Len(t, members, 2)
	assert.Equal(t, int64(2), members[1].ID)
	assert.Equal(t, "bob", members[1].Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"storage backend": "storage:\n  backend: mongo\n",
		"lock backend":    "lock:\n  backend: etcd\n",
		"lease < wait":    "lock:\n  wait: 5s\n  lease: 1s\n",
		"yaml":            "grpc: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadAndPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpc:\n  addr: \":7000\"\n"), 0o600))

	t.Setenv(PathEnv, path)
	assert.Equal(t, path, Path())

	cfg, err := Load(Path())
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.GRPC.Addr)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(PathEnv, "")
	assert.Equal(t, DefaultPath, Path())
}
