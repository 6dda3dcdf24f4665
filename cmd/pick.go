package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teera/bepick/internal/becodec"
	"github.com/teera/bepick/internal/config"
	"github.com/teera/bepick/internal/history"
	"github.com/teera/bepick/internal/output"
	tuipicker "github.com/teera/bepick/internal/tui/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a date interactively",
	Long: `Open the interactive calendar picker and print the chosen date as a
canonical Gregorian string (YYYY-MM-DD, plus HH:mm with --time).

Type digits to fill the masked BE date field, or tab into the calendar and
navigate with the arrow keys. The chosen value is printed on stdout and
recorded in the selection history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withTime, _ := cmd.Flags().GetBool("time")
		initial, _ := cmd.Flags().GetString("value")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if !cmd.Flags().Changed("time") {
			withTime = cfg.WithTime
		}

		if initial != "" && becodec.ParseCanonical(initial, withTime) == nil {
			err := fmt.Errorf("invalid initial value %q", initial)
			output.Error("%v", err)
			return err
		}

		canonical, err := tuipicker.Run(withTime, initial)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if canonical == "" {
			output.Subtle("no date selected")
			return nil
		}

		fmt.Println(canonical)

		if noHistory {
			return nil
		}
		display := becodec.FormatDisplay(becodec.ParseCanonical(canonical, withTime))
		store, err := history.Open(getBaseDir())
		if err != nil {
			output.Warning("history not recorded: %v", err)
			return nil
		}
		defer store.Close()
		if err := store.Record(canonical, display, withTime, time.Now()); err != nil {
			output.Warning("history not recorded: %v", err)
		}
		return nil
	},
}

func init() {
	addTimeFlag(pickCmd.Flags())
	pickCmd.Flags().String("value", "", "initial canonical value (YYYY-MM-DD[ HH:mm])")
	pickCmd.Flags().Bool("no-history", false, "do not record the selection")
	rootCmd.AddCommand(pickCmd)
}
