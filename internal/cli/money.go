package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func accountPath(id string) string {
	return fmt.Sprintf("/api/v1/accounts/%s/%s", cfg.HolderType, id)
}

func newBalanceCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if full {
				var result AccountResult
				if err := client.Get(accountPath(args[0]), &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			var result BalanceResult
			if err := client.Get(accountPath(args[0])+"/balance", &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show the per-backend breakdown")

	return cmd
}

func newDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit an amount into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			req := map[string]int64{"amount": amount}
			var result TransactionResult

			if err := client.Post(accountPath(args[0])+"/deposit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw an amount from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			req := map[string]int64{"amount": amount}
			var result TransactionResult

			if err := client.Post(accountPath(args[0])+"/withdraw", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPayCmd() *cobra.Command {
	var toType string

	cmd := &cobra.Command{
		Use:   "pay <from-id> <to-id> <amount>",
		Short: "Transfer an amount between accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected <from-id> <to-id> <amount>")
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			if toType == "" {
				toType = cfg.HolderType
			}
			req := map[string]any{
				"to_type": toType,
				"to_id":   args[1],
				"amount":  amount,
			}
			var result TransactionResult

			if err := client.Post(accountPath(args[0])+"/transfer", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&toType, "to-type", "", "Receiving account's holder type (defaults to --holder-type)")

	return cmd
}
