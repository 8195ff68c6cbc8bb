package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env      string
	HTTPPort string
	AdminKey string
	RateRPS  int

	Limits Limits
}

// Limits are the business thresholds the ledger enforces. All of them are
// env-overridable so tests and staging can run with smaller numbers.
type Limits struct {
	MinBalance        int64
	InterbankFee      int64
	MaxTransferPerTx  int64
	DailyTxCountLimit int
}

func Load() Config {
	cfg := Config{
		Env:      get("APP_ENV", "dev"),
		HTTPPort: get("HTTP_PORT", "8080"),
		AdminKey: get("ADMIN_KEY", "super-secret-admin"),
		RateRPS:  getInt("RATE_RPS", 100),
		Limits: Limits{
			MinBalance:        getInt64("MIN_BALANCE", 50_000),
			InterbankFee:      getInt64("INTERBANK_FEE", 6_500),
			MaxTransferPerTx:  getInt64("MAX_TRANSFER_PER_TX", 5_000_000),
			DailyTxCountLimit: getInt("DAILY_TX_COUNT_LIMIT", 10),
		},
	}
	return cfg
}

func get(key, def string) string { v := os.Getenv(key); if v == "" { return def }; return v }

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return n
	}
	return def
}
