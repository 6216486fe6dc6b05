package main

import (
	"log/slog"

	"github.com/DanielPopoola/atm-teller/internal/config"
	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/DanielPopoola/atm-teller/internal/journal"
	"github.com/DanielPopoola/atm-teller/internal/machine"
	"github.com/DanielPopoola/atm-teller/internal/registry"
	"github.com/spf13/cobra"
)

type teller struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *registry.Registry
	journal  *journal.Journal
	machine  *machine.Machine
}

// buildTeller wires config, logging, registries, inventory and the machine.
// The --seed flag overrides the configured seed path; with neither set the
// built-in demo accounts and cards are used.
func buildTeller(cmd *cobra.Command) (*teller, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	seedPath := cfg.Seed.Path
	if flagPath, _ := cmd.Flags().GetString("seed"); flagPath != "" {
		seedPath = flagPath
	}

	var reg *registry.Registry
	if seedPath != "" {
		reg, err = registry.Load(seedPath)
		if err != nil {
			return nil, err
		}
		logger.Info("registry loaded", "seed", seedPath)
	} else {
		reg = registry.Demo()
		logger.Info("using demo registry")
	}

	inventory, err := domain.NewCashInventory(cfg.Inventory.Stock())
	if err != nil {
		return nil, err
	}

	j := journal.New()
	m := machine.New(reg, inventory,
		machine.WithLogger(logger),
		machine.WithJournal(j),
		machine.WithMaxPinAttempts(cfg.Machine.MaxPinAttempts),
	)

	logger.Info("teller ready",
		"inventory_total", inventory.TotalValue(),
		"max_pin_attempts", cfg.Machine.MaxPinAttempts,
	)

	return &teller{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		journal:  j,
		machine:  m,
	}, nil
}
