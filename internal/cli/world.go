package cli

import (
	"github.com/spf13/cobra"
)

func newWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "World administration commands",
	}

	cmd.AddCommand(newWorldJoinCmd())
	cmd.AddCommand(newWorldLeaveCmd())
	cmd.AddCommand(newWorldPlaceCmd())

	return cmd
}

func newWorldJoinCmd() *cobra.Command {
	var world string

	cmd := &cobra.Command{
		Use:   "join <player-id> <x> <y> <z>",
		Short: "Bring a player online at a location",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseCoords(world, args[1], args[2], args[3])
			if err != nil {
				return err
			}

			req := map[string]any{"location": loc}
			if err := client.Post("/api/v1/world/players/"+args[0]+"/join", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player joined")
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "world", "World name")

	return cmd
}

func newWorldLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <player-id>",
		Short: "Take a player offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/world/players/"+args[0]+"/leave", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player left")
			return nil
		},
	}
}

func newWorldPlaceCmd() *cobra.Command {
	var world string

	cmd := &cobra.Command{
		Use:   "place-container <x> <y> <z>",
		Short: "Place a container block at a location",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseCoords(world, args[0], args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]any{"location": loc}
			if err := client.Post("/api/v1/world/containers", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Container placed")
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "world", "World name")

	return cmd
}
