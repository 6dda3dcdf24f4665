package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teera/bepick/internal/config"
	"github.com/teera/bepick/internal/history"
	"github.com/teera/bepick/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently picked dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if limit <= 0 {
			limit = cfg.GetHistoryLimit()
		}

		store, err := history.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		selections, err := store.List(limit)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if asJSON {
			return output.JSON(selections)
		}
		if len(selections) == 0 {
			output.Subtle("no picks recorded yet")
			return nil
		}
		for _, sel := range selections {
			fmt.Printf("%-18s %-18s %s\n", sel.Canonical, sel.Display,
				sel.PickedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded picks",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			var confirmed bool
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title("Delete all recorded picks?").
					Affirmative("Delete").
					Negative("Keep").
					Value(&confirmed),
			))
			if err := form.Run(); err != nil {
				return err
			}
			if !confirmed {
				output.Subtle("history kept")
				return nil
			}
		}

		store, err := history.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("history cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().Int("limit", 0, "max rows to show (default from config)")
	historyClearCmd.Flags().Bool("force", false, "skip confirmation")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
