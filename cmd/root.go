package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "bepick",
	Short: "Thai Buddhist-Era date picker and converter",
	Long: `bepick - a terminal date/date-time picker for the Thai Buddhist Era (BE) convention.

Dates are entered and displayed as DD/MM/YYYY with a BE year (AD + 543) and
exchanged with other tools as canonical Gregorian strings (YYYY-MM-DD, with an
optional HH:mm segment).`,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory for config and history (default: home)")
}

// addTimeFlag registers the shared --time flag on a command's flag set.
func addTimeFlag(fs *pflag.FlagSet) {
	fs.BoolP("time", "t", false, "include a HH:mm time-of-day segment")
}

func initBaseDir() {
	if baseDir != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		var wdErr error
		home, wdErr = os.Getwd()
		if wdErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot determine base directory: %v\n", err)
			os.Exit(1)
		}
	}
	baseDir = home
}

// getBaseDir returns the directory holding config and history
func getBaseDir() string {
	return baseDir
}
