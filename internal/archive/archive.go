package archive

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/report"
)

// Archive persists validation runs in a SQLite database.
type Archive struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	checks     INTEGER NOT NULL,
	pass       INTEGER NOT NULL,
	marginal   INTEGER NOT NULL,
	tension    INTEGER NOT NULL,
	fail       INTEGER NOT NULL,
	missing    INTEGER NOT NULL,
	invalid    INTEGER NOT NULL,
	evaluated  INTEGER NOT NULL,
	pass_rate  REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id          TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position        INTEGER NOT NULL,
	name            TEXT NOT NULL,
	sector          TEXT NOT NULL,
	prediction_path TEXT NOT NULL,
	computed        REAL,
	computed_exact  TEXT NOT NULL,
	experimental    REAL,
	uncertainty     REAL,
	sigma           REAL,
	sigma_exact     TEXT NOT NULL,
	status          TEXT NOT NULL,
	detail          TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the run archive at path, creating the file and its schema on
// first use.
func Open(path string) (*Archive, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the SQLite handle.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// SaveRun persists one report: the run header plus one results row per
// check, all in a single transaction.
func (a *Archive) SaveRun(ctx context.Context, rep *report.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a == nil || a.db == nil {
		return fmt.Errorf("archive is not configured")
	}
	if rep == nil {
		return fmt.Errorf("report is required")
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s := rep.Summary
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (
		   id, created_at, checks, pass, marginal, tension, fail, missing, invalid, evaluated, pass_rate
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, toMillis(rep.CreatedAt),
		s.Checks, s.Pass, s.Marginal, s.Tension, s.Fail, s.Missing, s.Invalid, s.Evaluated, s.PassRate,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", rep.RunID, err)
	}

	for i, row := range rep.Results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO results (
			   run_id, position, name, sector, prediction_path,
			   computed, computed_exact, experimental, uncertainty,
			   sigma, sigma_exact, status, detail
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rep.RunID, i, row.Name, row.Sector, row.ParamPath,
			row.Computed, row.ComputedExact, row.Experimental, row.Uncertainty,
			row.Sigma, row.SigmaExact, string(row.Status), row.Detail,
		); err != nil {
			return fmt.Errorf("insert result %s/%s: %w", rep.RunID, row.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive transaction: %w", err)
	}
	return nil
}

// RunSummary is one archived run header.
type RunSummary struct {
	RunID     string
	CreatedAt time.Time
	Checks    int
	Pass      int
	Marginal  int
	Tension   int
	Fail      int
	Missing   int
	Invalid   int
	Evaluated int
	PassRate  float64
}

// ListRuns returns up to limit archived run headers, newest first.
func (a *Archive) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a == nil || a.db == nil {
		return nil, fmt.Errorf("archive is not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT id, created_at, checks, pass, marginal, tension, fail, missing, invalid, evaluated, pass_rate
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt int64
		if err := rows.Scan(&r.RunID, &createdAt,
			&r.Checks, &r.Pass, &r.Marginal, &r.Tension, &r.Fail, &r.Missing, &r.Invalid, &r.Evaluated, &r.PassRate); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		r.CreatedAt = fromMillis(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// Results returns the archived rows of one run in their report order.
func (a *Archive) Results(ctx context.Context, runID string) ([]report.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a == nil || a.db == nil {
		return nil, fmt.Errorf("archive is not configured")
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT name, sector, prediction_path,
		        computed, computed_exact, experimental, uncertainty,
		        sigma, sigma_exact, status, detail
		 FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []report.Row
	for rows.Next() {
		var r report.Row
		var status string
		if err := rows.Scan(&r.Name, &r.Sector, &r.ParamPath,
			&r.Computed, &r.ComputedExact, &r.Experimental, &r.Uncertainty,
			&r.Sigma, &r.SigmaExact, &status, &r.Detail); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		r.Status = report.Status(status)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
