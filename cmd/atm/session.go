package main

import (
	"os"

	"github.com/DanielPopoola/atm-teller/internal/interfaces/console"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive teller session on the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTeller(cmd)
		if err != nil {
			return err
		}

		c := console.New(t.machine, t.registry, t.journal, os.Stdin, os.Stdout, t.logger)
		return c.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
