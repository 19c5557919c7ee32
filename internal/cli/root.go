// Package cli implements the gringotts command line client
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gringotts",
		Short: "CLI tool for the gringotts economy API",
		Long: `gringotts is a CLI tool for interacting with the gringotts economy JSON API.

It supports balance queries, deposits, withdrawals, transfers, vault
registration and world administration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GRINGOTTS_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.HolderType, "holder-type", cfg.HolderType, "Account holder type (env: GRINGOTTS_HOLDER_TYPE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newDepositCmd())
	rootCmd.AddCommand(newWithdrawCmd())
	rootCmd.AddCommand(newPayCmd())
	rootCmd.AddCommand(newVaultCmd())
	rootCmd.AddCommand(newWorldCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
