package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/timeclock-engine/approval"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send the current period's timesheet for review",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	s, err := openSession(ctx, now)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	ts := s.controller.Timesheet()
	if ts.IsBlank() {
		return fmt.Errorf("nothing to submit: the current period is blank")
	}

	client := approval.NewClient(s.settings.ServerURL())
	id, err := client.Submit(ctx, ts)
	if err != nil {
		return err
	}

	fmt.Printf("Submitted %s for review (submission %s)\n", ts.PayPeriod, id)
	return nil
}
