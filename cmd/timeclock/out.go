package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out and show the day's total",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

func runOut(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	s, err := openSession(ctx, now)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if err := s.controller.ClockOut(now); err != nil {
		return err
	}

	day, _ := s.controller.Period().DayIndex(now)
	record := s.controller.Timesheet().Day(day)
	fmt.Printf("Clocked out. Today: %sh\n", record.Total.String())
	if s.controller.HasConflict(day) {
		fmt.Println("Warning: today's entries overlap")
	}
	return nil
}
