package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	debugMode bool
)

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "mouselock",
	Short: "Confine the mouse cursor to one monitor",
	Long: `Mouselock confines the mouse cursor to the boundaries of a single
monitor in a multi-monitor desktop.

While the lock is active:
  - Ctrl (or left Alt) arms a release: the confinement lifts the next
    time the cursor reaches the monitor edge, and re-engages when the
    cursor returns to the locked monitor
  - F11 moves the lock to the monitor currently under the cursor
  - Ctrl+C exits and removes the confinement

Running without a subcommand starts the lock, asking for a monitor
when none is given with --monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLock(false)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	registerLockFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(systrayCmd)
	rootCmd.AddCommand(versionCmd)
}
