package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjornsen/mouselock/internal/clip"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Clear any system-wide cursor confinement",
	Long: `Remove the cursor confinement rectangle, including one left behind
by a crashed instance or applied by another application. The clip
region is desktop-global, so this works regardless of which process
applied it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clip.New().Clear(); err != nil {
			return fmt.Errorf("failed to clear cursor confinement: %w", err)
		}
		fmt.Println("Cursor confinement cleared.")
		return nil
	},
}
