package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game session commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameRevealCmd())
	cmd.AddCommand(newGameEndCmd())
	cmd.AddCommand(newGameQRCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var (
		rosterID string
		word     string
		hint     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a game session from a roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"roster_id": rosterID,
				"word":      word,
			}
			if hint != "" {
				req["hint"] = hint
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rosterID, "roster", "", "Roster draft id (required)")
	cmd.Flags().StringVar(&word, "word", "", "Secret word for the round (required)")
	cmd.Flags().StringVar(&hint, "hint", "", "Hint shown to the imposter")
	_ = cmd.MarkFlagRequired("roster")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get game session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id> [player-id]",
		Short: "Reveal your role in a game",
		Long: `Claim a player id and reveal the role behind it.

The claimed player id is remembered locally, so subsequent reveals for
the same game can omit it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := args[0]

			state, err := LoadState(cfg.StateFile)
			if err != nil {
				return err
			}

			playerID := ""
			if len(args) == 2 {
				playerID = args[1]
			} else {
				playerID = state.Get(playerKey(gameID))
			}
			if playerID == "" {
				return fmt.Errorf("no player id given and none remembered for game %s", gameID)
			}

			req := map[string]string{"player_id": playerID}

			var result Reveal
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reveal", gameID), req, &result); err != nil {
				return err
			}

			// Remember the id the server confirmed, which may differ
			// in case from what was typed
			if err := state.Set(playerKey(gameID), result.Player.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <id>",
		Short: "End a game and reveal the imposter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/end", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameQRCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "qr <id>",
		Short: "Download the game's share QR code as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := client.GetBytes(fmt.Sprintf("/api/v1/games/%s/qr", args[0]))
			if err != nil {
				return err
			}

			if err := os.WriteFile(outFile, png, 0644); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Wrote %s (%d bytes)", outFile, len(png)))
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "file", "game-qr.png", "Output file path")

	return cmd
}
