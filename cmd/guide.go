package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teera/bepick/internal/output"
)

const guideText = `# bepick

A terminal date picker for the Thai Buddhist Era (BE) convention.

## The two wire forms

| Form | Shape | Year |
|------|-------|------|
| Display | ` + "`DD/MM/YYYY[ HH:mm]`" + ` | Buddhist Era (AD + 543) |
| Canonical | ` + "`YYYY-MM-DD[ HH:mm]`" + ` | Gregorian (AD) |

Scripts and other tools should always consume the canonical form; the BE
display form exists for human entry and reading.

## Typing dates

The entry field masks digits as you type: ` + "`18022569`" + ` becomes
` + "`18/02/2569`" + `. Once the field is full the date is validated —
non-existent dates (like 30/02) and years more than 100 years away are
rejected, and the selection is cleared until the text is corrected.

## Calendar navigation

Press tab to move into the calendar. ` + "`v`" + ` switches between day,
month, and year views; ` + "`p`" + ` and ` + "`n`" + ` page by one month,
one year, or twelve years depending on the view. ` + "`t`" + ` jumps to
today and ` + "`c`" + ` clears the selection.

## Time of day

With ` + "`--time`" + `, picks carry an HH:mm segment and the picker stays
open after a day is chosen so the time can be adjusted before confirming
with enter.

## History

Every confirmed pick is recorded locally. ` + "`bepick history`" + ` lists
recent picks and ` + "`bepick history clear`" + ` wipes them.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := output.RenderMarkdown(guideText)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
