package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/timeclock-engine/form"
	"github.com/warp/timeclock-engine/settings"
	"github.com/warp/timeclock-engine/store/sqlite"
	"github.com/warp/timeclock-engine/timesheet"
)

var rootCmd = &cobra.Command{
	Use:   "timeclock",
	Short: "Clock in and out of the current pay period",
	Long: `timeclock records quarter-hour work entries against the current
14-day pay period and submits finished periods for supervisor review.
Data is stored under ~/.timeclock/.`,
}

// execute is the entry point called from main.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(submitCmd)
}

func baseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".timeclock")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

type session struct {
	controller *form.Controller
	settings   *settings.Settings
	store      *sqlite.Store
}

// openSession loads settings, opens the local database, and positions
// the controller on the pay period containing now.
func openSession(ctx context.Context, now time.Time) (*session, error) {
	dir, err := baseDir()
	if err != nil {
		return nil, err
	}

	cfg, err := settings.Load(filepath.Join(dir, "settings.json"))
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	store, err := sqlite.New(filepath.Join(dir, "timeclock.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	controller := form.NewController(store, cfg)
	if err := controller.SelectPeriod(ctx, timesheet.CurrentPeriod(now)); err != nil {
		store.Close()
		return nil, err
	}
	return &session{controller: controller, settings: cfg, store: store}, nil
}

// close flushes any pending save before releasing the database.
func (s *session) close(ctx context.Context) error {
	err := s.controller.SaveNow(ctx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}
