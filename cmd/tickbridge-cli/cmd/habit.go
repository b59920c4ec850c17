package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tickbridge/internal/application/commands"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits (requires session auth)",
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := commands.NewListHabitsCommand(GetGateway()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, h := range habits {
			fmt.Printf("%s  %s  goal %.0f %s\n", h.ID, h.Name, h.Goal, h.Unit)
		}
		return nil
	},
}

var habitCheckinFlags struct {
	stamp string
	value float64
}

var habitCheckinCmd = &cobra.Command{
	Use:   "checkin <habit-id>",
	Short: "Record a habit check-in (default: today, value 1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stamp := habitCheckinFlags.stamp
		if stamp == "" {
			stamp = time.Now().Format("20060102")
		}

		checkinCmd := commands.NewCheckinHabitCommand(GetGateway(), args[0], stamp, habitCheckinFlags.value)
		result, err := checkinCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)

	habitCheckinCmd.Flags().StringVar(&habitCheckinFlags.stamp, "day", "", "day as YYYYMMDD")
	habitCheckinCmd.Flags().Float64Var(&habitCheckinFlags.value, "value", 1, "check-in amount")

	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitCheckinCmd)
}
