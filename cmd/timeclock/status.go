package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's record and clock state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	s, err := openSession(ctx, now)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	period := s.controller.Period()
	fmt.Printf("Pay period: %s\n", period.Label)

	day, ok := period.DayIndex(now)
	if !ok {
		return nil
	}

	if s.controller.IsClockedIn(now) {
		fmt.Println("Clocked in.")
	} else {
		fmt.Println("Not clocked in.")
	}

	if summary := s.controller.DaySummary(day); summary != "" {
		fmt.Printf("Today: %s\n", summary)
	}
	record := s.controller.Timesheet().Day(day)
	if record.Recompute().HasInput {
		fmt.Printf("Hours today: %s\n", record.Total.String())
	}
	return nil
}
