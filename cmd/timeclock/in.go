package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in, rounded to the nearest quarter hour",
	Args:  cobra.NoArgs,
	RunE:  runIn,
}

func runIn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	s, err := openSession(ctx, now)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if err := s.controller.ClockIn(now); err != nil {
		return err
	}

	day, _ := s.controller.Period().DayIndex(now)
	for _, iv := range s.controller.Timesheet().Day(day).Intervals {
		if iv.IsOpen() {
			fmt.Printf("Clocked in at %s\n", iv.Start.Format12Hour())
			break
		}
	}
	return nil
}
