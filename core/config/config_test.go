package config_test

import (
	"testing"

	"p2p-recon/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.PaymentsDB.Host)
	assert.Equal(t, 3306, cfg.LedgerDB.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PAYMENTSDB_HOST", "payments.internal")
	t.Setenv("PAYMENTSDB_NAME", "p2p")
	t.Setenv("LEDGERDB_HOST", "ledger.internal")
	t.Setenv("LEDGERDB_PORT", "3307")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "payments.internal", cfg.PaymentsDB.Host)
	assert.Equal(t, "p2p", cfg.PaymentsDB.Name)
	assert.Equal(t, "ledger.internal", cfg.LedgerDB.Host)
	assert.Equal(t, 3307, cfg.LedgerDB.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Storage.Enabled)
}
