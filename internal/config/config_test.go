package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, int64(50_000), cfg.Limits.MinBalance)
	assert.Equal(t, int64(6_500), cfg.Limits.InterbankFee)
	assert.Equal(t, int64(5_000_000), cfg.Limits.MaxTransferPerTx)
	assert.Equal(t, 10, cfg.Limits.DailyTxCountLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MIN_BALANCE", "100")
	t.Setenv("INTERBANK_FEE", "5")
	t.Setenv("DAILY_TX_COUNT_LIMIT", "3")
	t.Setenv("HTTP_PORT", "9090")

	cfg := Load()
	assert.Equal(t, int64(100), cfg.Limits.MinBalance)
	assert.Equal(t, int64(5), cfg.Limits.InterbankFee)
	assert.Equal(t, 3, cfg.Limits.DailyTxCountLimit)
	assert.Equal(t, "9090", cfg.HTTPPort)
}
