/*
Package sqlite provides the SQLite-backed persistence layer.

PURPOSE:
  Stores employee timesheets keyed by pay-period label, submitted
  timesheets awaiting supervisor review, and the supervisor accounts
  themselves. The same patterns apply to PostgreSQL with only dialect
  differences.

KEY TABLES:
  timesheets:  Label-keyed JSON records; "Template" is the reserved
               blank-fill source. Saves upsert.
  submissions: Review queue; status transitions recorded in place with
               signature/reason columns.
  supervisors: Username + bcrypt password hash.

WAL MODE:
  Opened with WAL (Write-Ahead Logging): readers don't block, one writer
  at a time, better crash recovery.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety within one process. With
  PostgreSQL, database-level concurrency control takes over.

USAGE:
  store, err := sqlite.New("./data/timeclock.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - form: consumes SaveTimesheet/LoadTimesheet through form.Store
  - api: consumes the submission and supervisor queries
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/timeclock-engine/approval"
	"github.com/warp/timeclock-engine/timesheet"
)

// ErrNotFound is returned for lookups of absent submissions or supervisors.
var ErrNotFound = errors.New("not found")

// Store implements all persistence interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database in tests.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS timesheets (
		pay_period  TEXT PRIMARY KEY,
		data        TEXT NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS submissions (
		id             TEXT PRIMARY KEY,
		employee_name  TEXT NOT NULL,
		pay_period     TEXT NOT NULL,
		status         TEXT NOT NULL,
		data           TEXT NOT NULL,
		submitted_at   TIMESTAMP NOT NULL,
		signature      TEXT NOT NULL DEFAULT '',
		signature_date TEXT NOT NULL DEFAULT '',
		reject_reason  TEXT NOT NULL DEFAULT '',
		decided_at     TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_status
		ON submissions(status, submitted_at);

	CREATE TABLE IF NOT EXISTS supervisors (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		display_name  TEXT NOT NULL
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// =============================================================================
// TIMESHEETS - Label-keyed employee records
// =============================================================================

// SaveTimesheet upserts the record for a pay-period label.
func (s *Store) SaveTimesheet(ctx context.Context, label string, ts *timesheet.Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(ts)
	if err != nil {
		return fmt.Errorf("encode timesheet: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO timesheets (pay_period, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(pay_period) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`,
		label, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save timesheet %q: %w", label, err)
	}
	return nil
}

// LoadTimesheet returns the record for a label, or found=false.
func (s *Store) LoadTimesheet(ctx context.Context, label string) (*timesheet.Timesheet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM timesheets WHERE pay_period = ?`, label).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load timesheet %q: %w", label, err)
	}

	var ts timesheet.Timesheet
	if err := json.Unmarshal([]byte(data), &ts); err != nil {
		return nil, false, fmt.Errorf("decode timesheet %q: %w", label, err)
	}
	return &ts, true, nil
}

// DeleteTimesheet removes the record for a label. Deleting an absent
// label is not an error.
func (s *Store) DeleteTimesheet(ctx context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM timesheets WHERE pay_period = ?`, label)
	return err
}

// =============================================================================
// SUBMISSIONS - Supervisor review queue
// =============================================================================

// InsertSubmission stores a new pending submission.
func (s *Store) InsertSubmission(ctx context.Context, sub *approval.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sub.Timesheet)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, employee_name, pay_period, status, data, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.EmployeeName, sub.PayPeriod, string(sub.Status), string(data), sub.SubmittedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", sub.ID, err)
	}
	return nil
}

// GetSubmission returns one submission by id.
func (s *Store) GetSubmission(ctx context.Context, id string) (*approval.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_name, pay_period, status, data, submitted_at,
		       signature, signature_date, reject_reason
		FROM submissions WHERE id = ?`, id)
	return scanSubmission(row)
}

// ListSubmissionsByStatus returns submissions in one review state,
// oldest first.
func (s *Store) ListSubmissionsByStatus(ctx context.Context, status approval.Status) ([]approval.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_name, pay_period, status, data, submitted_at,
		       signature, signature_date, reject_reason
		FROM submissions WHERE status = ? ORDER BY submitted_at`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list %s submissions: %w", status, err)
	}
	defer rows.Close()

	var subs []approval.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// ApproveSubmission transitions a pending submission to approved,
// recording the signature image and date.
func (s *Store) ApproveSubmission(ctx context.Context, id, signature, signatureDate string) error {
	return s.decide(ctx, id, approval.StatusApproved, signature, signatureDate, "")
}

// RejectSubmission transitions a pending submission to rejected with a reason.
func (s *Store) RejectSubmission(ctx context.Context, id, reason string) error {
	return s.decide(ctx, id, approval.StatusRejected, "", "", reason)
}

func (s *Store) decide(ctx context.Context, id string, status approval.Status, signature, signatureDate, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE submissions
		SET status=?, signature=?, signature_date=?, reject_reason=?, decided_at=?
		WHERE id=? AND status=?`,
		string(status), signature, signatureDate, reason, time.Now().UTC(),
		id, string(approval.StatusPending))
	if err != nil {
		return fmt.Errorf("update submission %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSubmission removes a submission in any state.
func (s *Store) DeleteSubmission(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete submission %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*approval.Submission, error) {
	var sub approval.Submission
	var status, data string
	err := row.Scan(&sub.ID, &sub.EmployeeName, &sub.PayPeriod, &status, &data,
		&sub.SubmittedAt, &sub.SupervisorSignature, &sub.SignatureDate, &sub.RejectReason)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}
	sub.Status = approval.Status(status)
	if err := json.Unmarshal([]byte(data), &sub.Timesheet); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", sub.ID, err)
	}
	return &sub, nil
}

// =============================================================================
// SUPERVISORS
// =============================================================================

// Supervisor is a reviewer account. PasswordHash is a bcrypt hash.
type Supervisor struct {
	Username     string
	PasswordHash string
	DisplayName  string
}

// SaveSupervisor upserts a supervisor account.
func (s *Store) SaveSupervisor(ctx context.Context, sup Supervisor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO supervisors (username, password_hash, display_name) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET password_hash=excluded.password_hash,
			display_name=excluded.display_name`,
		sup.Username, sup.PasswordHash, sup.DisplayName)
	if err != nil {
		return fmt.Errorf("save supervisor %q: %w", sup.Username, err)
	}
	return nil
}

// GetSupervisor returns one account by username.
func (s *Store) GetSupervisor(ctx context.Context, username string) (*Supervisor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sup Supervisor
	err := s.db.QueryRowContext(ctx, `
		SELECT username, password_hash, display_name FROM supervisors WHERE username = ?`,
		username).Scan(&sup.Username, &sup.PasswordHash, &sup.DisplayName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get supervisor %q: %w", username, err)
	}
	return &sup, nil
}

// ListSupervisorNames returns the display names of all accounts.
func (s *Store) ListSupervisorNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT display_name FROM supervisors ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CountSupervisors reports how many accounts exist, for first-run seeding.
func (s *Store) CountSupervisors(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM supervisors`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
