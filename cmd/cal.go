package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teera/bepick/internal/becodec"
	"github.com/teera/bepick/internal/output"
	"github.com/teera/bepick/internal/thaical"

	"github.com/charmbracelet/lipgloss"
)

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true)
	calWeekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	calTodayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

var calCmd = &cobra.Command{
	Use:   "cal [MM] [BE-year]",
	Short: "Print a month calendar with BE year numbering",
	Long: `Print the calendar grid of a month. With no arguments the current month
is shown; otherwise pass a month number and, optionally, a Buddhist-Era year.`,
	Example: `  bepick cal
  bepick cal 02
  bepick cal 02 2569`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()

		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				err := fmt.Errorf("invalid month %q", args[0])
				output.Error("%v", err)
				return err
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			be, err := strconv.Atoi(args[1])
			if err != nil {
				err := fmt.Errorf("invalid BE year %q", args[1])
				output.Error("%v", err)
				return err
			}
			year = be - becodec.BEOffset
		}

		fmt.Println(renderMonth(year, month, now))
		return nil
	},
}

// renderMonth lays out one month: Thai header, weekday row, and day rows
// aligned to the week-start column. The reference time marks today.
func renderMonth(year int, month time.Month, now time.Time) string {
	var b strings.Builder

	header := fmt.Sprintf("%s %d", thaical.ThaiMonths[month-1], year+becodec.BEOffset)
	b.WriteString(calHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, wd := range thaical.ThaiWeekdays {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(calWeekdayStyle.Render(padDay(wd)))
	}
	b.WriteString("\n")

	for i, day := range thaical.MonthGrid(year, month) {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		if day == 0 {
			b.WriteString("  ")
			continue
		}
		cell := padDay(strconv.Itoa(day))
		if now.Year() == year && now.Month() == month && now.Day() == day {
			cell = calTodayStyle.Render(cell)
		}
		b.WriteString(cell)
	}

	return b.String()
}

func padDay(s string) string {
	for len([]rune(s)) < 2 {
		s = " " + s
	}
	return s
}

func init() {
	rootCmd.AddCommand(calCmd)
}
