package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tickbridge/internal/application/commands"
)

var focusFlags struct {
	start string
	end   string
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Show per-day focus minutes (requires session auth)",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		start := focusFlags.start
		if start == "" {
			start = now.AddDate(0, 0, -30).Format("20060102")
		}
		end := focusFlags.end
		if end == "" {
			end = now.Format("20060102")
		}

		summaries, err := commands.NewFocusHeatmapCommand(GetGateway(), start, end).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Printf("%s  %d min\n", s.Day, s.Duration/60)
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user's profile (requires session auth)",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := commands.NewProfileCommand(GetGateway()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s", profile.Username)
		if profile.Name != "" {
			fmt.Printf(" (%s)", profile.Name)
		}
		if profile.TimeZone != "" {
			fmt.Printf("  %s", profile.TimeZone)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	focusCmd.Flags().StringVar(&focusFlags.start, "start", "", "start day as YYYYMMDD (default: 30 days ago)")
	focusCmd.Flags().StringVar(&focusFlags.end, "end", "", "end day as YYYYMMDD (default: today)")

	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(whoamiCmd)
}
