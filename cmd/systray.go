package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjornsen/mouselock/internal/systray"
)

var systrayCmd = &cobra.Command{
	Use:   "systray",
	Short: "Run with a system tray icon",
	Long: `Run the lock with a system tray icon reflecting the current state.

The tray menu offers:
  - Pause/Resume to suspend and re-engage the lock
  - One entry per monitor to move the lock
  - Quit to remove the confinement and exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !systray.Available() {
			return fmt.Errorf("system tray is not available in this build")
		}
		return runLock(true)
	},
}

func init() {
	registerLockFlags(systrayCmd)
}
