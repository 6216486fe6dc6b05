package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "atm is a single-session teller machine simulator",
	Long:  `atm runs a state-machine driven teller: insert a card, validate a PIN, pick an operation and withdraw cash or check a balance, over a console session or an HTTP API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("seed", "", "YAML seed file with accounts and cards (default: built-in demo set)")
}
