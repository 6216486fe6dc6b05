package config_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/atm-teller/internal/config"
	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults stand on their own", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Primary.Env)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 0, cfg.Machine.MaxPinAttempts)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Empty(t, cfg.Seed.Path)
		assert.Equal(t, domain.DefaultStock(), cfg.Inventory.Stock())
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("ATM_SERVER__PORT", "9090")
		t.Setenv("ATM_MACHINE__MAX_PIN_ATTEMPTS", "3")
		t.Setenv("ATM_INVENTORY__BILL_100", "2")
		t.Setenv("ATM_LOGGER__LEVEL", "debug")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 3, cfg.Machine.MaxPinAttempts)
		assert.Equal(t, 2, cfg.Inventory.Bill100)
		assert.Equal(t, "debug", cfg.Logger.Level)

		stock := cfg.Inventory.Stock()
		assert.Equal(t, 2, stock[domain.Bill100])
		assert.Equal(t, 50, stock[domain.Bill1])
	})

	t.Run("stocked inventory config provisions a working inventory", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		inv, err := domain.NewCashInventory(cfg.Inventory.Stock())
		require.NoError(t, err)
		assert.Equal(t, int64(2250), inv.TotalValue())
	})
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	tests := []string{"debug", "info", "warn", "error", "", "bogus"}
	for _, level := range tests {
		t.Run("level "+level, func(t *testing.T) {
			logger := config.LoggerConfig{Level: level}.NewLogger()
			assert.NotNil(t, logger)
		})
	}
}
