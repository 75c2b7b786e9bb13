package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster draft commands",
	}

	cmd.AddCommand(newRosterCreateCmd())
	cmd.AddCommand(newRosterGetCmd())
	cmd.AddCommand(newRosterAddCmd())
	cmd.AddCommand(newRosterRemoveCmd())
	cmd.AddCommand(newRosterDeleteCmd())

	return cmd
}

func newRosterCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <game-master-name>",
		Short: "Create a new roster draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"game_master_name": args[0]}

			var result Roster
			if err := client.Post("/api/v1/rosters", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get roster details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster
			if err := client.Get(fmt.Sprintf("/api/v1/rosters/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Add a player to a roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[1]}

			var result Roster
			if err := client.Post(fmt.Sprintf("/api/v1/rosters/%s/players", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <player-id>",
		Short: "Remove a player from a roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster
			if err := client.Delete(fmt.Sprintf("/api/v1/rosters/%s/players/%s", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a roster draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/rosters/%s", args[0]), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted roster %s", args[0]))
			return nil
		},
	}
}
