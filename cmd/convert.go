package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teera/bepick/internal/becodec"
	"github.com/teera/bepick/internal/output"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert between BE display and canonical AD strings",
	Long: `Convert a single date string between the two wire forms.

The direction is detected from the input's shape: values containing '/' are
treated as BE display strings (DD/MM/YYYY) and converted to canonical AD form
(YYYY-MM-DD); anything else is treated as canonical and converted to display
form. Pass --time for values carrying an HH:mm segment.`,
	Example: `  bepick convert 18/02/2569
  bepick convert 2026-02-18
  bepick convert --time "18/02/2569 14:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withTime, _ := cmd.Flags().GetBool("time")
		asJSON, _ := cmd.Flags().GetBool("json")

		result, err := convertValue(args[0], withTime, time.Now())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if asJSON {
			return output.JSON(map[string]string{
				"input":  args[0],
				"output": result,
			})
		}
		fmt.Println(result)
		return nil
	},
}

// convertValue converts one value in the direction implied by its shape.
// The reference time feeds the display parser's plausibility window.
func convertValue(value string, withTime bool, now time.Time) (string, error) {
	if strings.Contains(value, "/") {
		in := becodec.ParseDisplayAt(value, withTime, now)
		if in == nil {
			return "", fmt.Errorf("invalid BE display date: %q", value)
		}
		return becodec.FormatCanonical(in), nil
	}
	in := becodec.ParseCanonical(value, withTime)
	if in == nil {
		return "", fmt.Errorf("invalid canonical date: %q", value)
	}
	return becodec.FormatDisplay(in), nil
}

func init() {
	addTimeFlag(convertCmd.Flags())
	convertCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(convertCmd)
}
