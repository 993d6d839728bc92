package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "u", Password: "p", DBName: "quickpay"}
	assert.Equal(t, "u:p@tcp(db:3307)/quickpay?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}
