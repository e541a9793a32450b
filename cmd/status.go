package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjornsen/mouselock/internal/models"
	"github.com/bjornsen/mouselock/internal/status"
)

var statusJSONOutput bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show lock status",
	Long:  `Display the state of a running mouselock instance: lock state, target monitor and duration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ok, err := status.Read()
		if err != nil {
			return fmt.Errorf("failed to read status: %w", err)
		}
		active := ok && status.Active(st)

		if statusJSONOutput {
			out := struct {
				Active bool `json:"active"`
				models.LockStatus
			}{Active: active, LockStatus: st}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if !active {
			fmt.Println("Lock: INACTIVE")
			return nil
		}

		duration := time.Since(st.StartTime).Round(time.Second)
		fmt.Printf("Lock:     %s\n", strings.ToUpper(string(st.State)))
		fmt.Printf("Monitor:  %s\n", st.Monitor.Label())
		fmt.Printf("Duration: %s\n", duration)
		fmt.Printf("PID:      %d\n", st.PID)

		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "Output status as JSON")
}
