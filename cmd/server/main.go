/*
main.go - Approval server entry point

PURPOSE:
  Initializes and starts the timesheet approval server. Handles
  configuration, dependency injection, first-run supervisor seeding,
  and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Initialize SQLite store
  3. Seed a supervisor account on first run
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: timeclock.db)
           Use ":memory:" for an in-memory database

ENVIRONMENT:
  JWT_SECRET           Token signing secret (required)
  TOKEN_TTL            Session lifetime, Go duration (default: 12h)
  SEED_SUPERVISOR      username:password:Display Name, applied only when
                       no supervisor accounts exist yet

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # First run, seeding the reviewer account
  JWT_SECRET=... SEED_SUPERVISOR='chris:hunter2:Chris Lee' ./server -db=./data/timeclock.db

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/warp/timeclock-engine/api"
	"github.com/warp/timeclock-engine/store/sqlite"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "timeclock.db", "SQLite database path")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ttl := 12 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid TOKEN_TTL %q: %v", raw, err)
		}
		ttl = parsed
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	if err := seedSupervisor(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed supervisor: %v", err)
	}

	handler := api.NewHandler(store, api.NewTokenManager(secret, ttl))
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Approval server listening on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// seedSupervisor creates the account named in SEED_SUPERVISOR, but only
// when the supervisors table is empty. Subsequent runs ignore the
// variable so a stale .env cannot overwrite a rotated password.
func seedSupervisor(ctx context.Context, store *sqlite.Store) error {
	raw := os.Getenv("SEED_SUPERVISOR")
	if raw == "" {
		return nil
	}

	n, err := store.CountSupervisors(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("SEED_SUPERVISOR must be username:password:Display Name")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(parts[1]), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := store.SaveSupervisor(ctx, sqlite.Supervisor{
		Username:     parts[0],
		PasswordHash: string(hash),
		DisplayName:  parts[2],
	}); err != nil {
		return err
	}
	log.Printf("Seeded supervisor account %q", parts[0])
	return nil
}
