package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjornsen/mouselock/internal/monitor"
)

var monitorsJSONOutput bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List available monitors",
	Long:  `List all available monitors with their resolution and position information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := monitor.List()
		if err != nil {
			return fmt.Errorf("failed to list monitors: %w", err)
		}

		if monitorsJSONOutput {
			data, err := json.MarshalIndent(monitors, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		cursorOn := 0
		if m, err := monitor.CursorMonitor(monitors); err == nil {
			cursorOn = m.Index
		}

		for _, m := range monitors {
			cursorMark := ""
			if m.Index == cursorOn {
				cursorMark = " (cursor)"
			}
			fmt.Printf("%s%s\n", m.Label(), cursorMark)
		}

		return nil
	},
}

func init() {
	monitorsCmd.Flags().BoolVar(&monitorsJSONOutput, "json", false, "Output monitors as JSON")
}
