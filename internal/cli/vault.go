package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Container vault management commands",
	}

	cmd.AddCommand(newVaultListCmd())
	cmd.AddCommand(newVaultRegisterCmd())
	cmd.AddCommand(newVaultUnregisterCmd())

	return cmd
}

func newVaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <account-id>",
		Short: "List an account's registered vaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Vault

			if err := client.Get(accountPath(args[0])+"/vaults", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVaultRegisterCmd() *cobra.Command {
	var world string

	cmd := &cobra.Command{
		Use:   "register <account-id> <x> <y> <z>",
		Short: "Register the container at a location as an account's vault",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseCoords(world, args[1], args[2], args[3])
			if err != nil {
				return err
			}

			req := map[string]any{"location": loc}
			var result Vault

			if err := client.Post(accountPath(args[0])+"/vaults", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "world", "World name")

	return cmd
}

func newVaultUnregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <vault-id>",
		Short: "Remove a vault registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/vaults/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Vault unregistered")
			return nil
		},
	}
}

func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func parseCoords(world, xs, ys, zs string) (map[string]any, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return nil, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return nil, fmt.Errorf("invalid y coordinate %q", ys)
	}
	z, err := strconv.Atoi(zs)
	if err != nil {
		return nil, fmt.Errorf("invalid z coordinate %q", zs)
	}
	return map[string]any{"world": world, "x": x, "y": y, "z": z}, nil
}
