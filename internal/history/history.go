package history

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the local sqlite ledger of gate runs.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id           TEXT PRIMARY KEY,
			label        TEXT NOT NULL,
			origin       TEXT NOT NULL,
			domain       TEXT NOT NULL,
			originality  REAL NOT NULL,
			ai_tone      REAL NOT NULL,
			humanity     REAL NOT NULL,
			risk         TEXT NOT NULL,
			passed       INTEGER NOT NULL,
			report       TEXT NOT NULL DEFAULT '',
			evaluated_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_evaluated ON runs(evaluated_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_passed ON runs(passed);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// RunID derives a stable run identifier from article content, so gating the
// same text twice updates one row instead of growing the ledger.
func RunID(text string) string {
	h := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", h[:16])
}

func (s *Store) Upsert(r Run) error {
	passed := 0
	if r.Passed {
		passed = 1
	}
	_, err := s.writeDB.Exec(`
		INSERT INTO runs (id, label, origin, domain, originality, ai_tone, humanity, risk, passed, report, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			origin = excluded.origin,
			domain = excluded.domain,
			originality = excluded.originality,
			ai_tone = excluded.ai_tone,
			humanity = excluded.humanity,
			risk = excluded.risk,
			passed = excluded.passed,
			report = excluded.report,
			evaluated_at = excluded.evaluated_at
	`, r.ID, r.Label, r.Origin, r.Domain, r.Originality, r.AITone, r.Humanity, r.Risk, passed, r.Report, r.EvaluatedAt)
	if err != nil {
		return fmt.Errorf("upserting run %s: %w", r.ID, err)
	}
	return nil
}

func (s *Store) GetRuns(opts QueryOpts) ([]Run, error) {
	var (
		where []string
		args  []interface{}
	)

	if !opts.Since.IsZero() {
		where = append(where, "evaluated_at >= ?")
		args = append(args, opts.Since)
	}

	if opts.Search != "" {
		where = append(where, "(label LIKE ? OR origin LIKE ?)")
		term := "%" + opts.Search + "%"
		args = append(args, term, term)
	}

	if opts.FailedOnly {
		where = append(where, "passed = 0")
	}

	query := "SELECT id, label, origin, domain, originality, ai_tone, humanity, risk, passed, report, evaluated_at FROM runs"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY evaluated_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 500
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := s.readDB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r      Run
			passed int
		)
		if err := rows.Scan(&r.ID, &r.Label, &r.Origin, &r.Domain, &r.Originality, &r.AITone, &r.Humanity, &r.Risk, &passed, &r.Report, &r.EvaluatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Passed = passed != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Prune deletes runs older than the retention period and returns how many
// were removed.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	res, err := s.writeDB.Exec("DELETE FROM runs WHERE evaluated_at < ?", time.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats returns the run count and the database file size.
func (s *Store) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}
