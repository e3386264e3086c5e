package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show the period's weekly totals and overtime",
	Args:  cobra.NoArgs,
	RunE:  runTotals,
}

func runTotals(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	s, err := openSession(ctx, now)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	totals := s.controller.Totals()
	fmt.Printf("Pay period: %s\n", s.controller.Period().Label)
	fmt.Printf("  Week 1:   %s\n", totals.Week1Total.String())
	fmt.Printf("  Week 2:   %s\n", totals.Week2Total.String())
	fmt.Printf("  Overtime: %s\n", totals.Overtime.String())
	fmt.Printf("  Total:    %s\n", totals.PeriodTotal.String())
	return nil
}
