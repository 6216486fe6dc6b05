package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Machine   MachineConfig   `koanf:"machine"`
	Inventory InventoryConfig `koanf:"inventory"`
	Logger    LoggerConfig    `koanf:"logger"`
	Seed      SeedConfig      `koanf:"seed"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type MachineConfig struct {
	// MaxPinAttempts retains the card after that many consecutive PIN
	// failures. 0 disables the policy and allows unlimited retries.
	MaxPinAttempts int `koanf:"max_pin_attempts" validate:"min=0"`
}

type InventoryConfig struct {
	Bill100 int `koanf:"bill_100" validate:"min=0"`
	Bill50  int `koanf:"bill_50" validate:"min=0"`
	Bill20  int `koanf:"bill_20" validate:"min=0"`
	Bill10  int `koanf:"bill_10" validate:"min=0"`
	Bill5   int `koanf:"bill_5" validate:"min=0"`
	Bill1   int `koanf:"bill_1" validate:"min=0"`
}

// Stock converts the configured counts into the domain bundle the inventory
// is provisioned with.
func (c InventoryConfig) Stock() domain.Bundle {
	return domain.Bundle{
		domain.Bill100: c.Bill100,
		domain.Bill50:  c.Bill50,
		domain.Bill20:  c.Bill20,
		domain.Bill10:  c.Bill10,
		domain.Bill5:   c.Bill5,
		domain.Bill1:   c.Bill1,
	}
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

type SeedConfig struct {
	// Path points at a YAML seed file of accounts and cards. Empty means
	// the built-in demo registry.
	Path string `koanf:"path"`
}

func defaults() map[string]interface{} {
	stock := domain.DefaultStock()
	return map[string]interface{}{
		"primary.env":              "dev",
		"server.port":              "8080",
		"server.read_timeout":      "5s",
		"server.write_timeout":     "10s",
		"server.idle_timeout":      "60s",
		"machine.max_pin_attempts": 0,
		"inventory.bill_100":       stock[domain.Bill100],
		"inventory.bill_50":        stock[domain.Bill50],
		"inventory.bill_20":        stock[domain.Bill20],
		"inventory.bill_10":        stock[domain.Bill10],
		"inventory.bill_5":         stock[domain.Bill5],
		"inventory.bill_1":         stock[domain.Bill1],
		"logger.level":             "info",
		"seed.path":                "",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("ATM_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "ATM_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
