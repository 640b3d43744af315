// Package persistence provides SQLite-based storage for completed simulation
// runs and their per-epoch traces.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/wedgesim/internal/engine"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		label TEXT NOT NULL,
		horizon INTEGER NOT NULL,
		discount_rate REAL NOT NULL,
		event_mode INTEGER NOT NULL,
		investment REAL NOT NULL,
		damage REAL NOT NULL,
		infeasible INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trace (
		run_id TEXT NOT NULL,
		epoch INTEGER NOT NULL,
		investment REAL NOT NULL,
		damage REAL NOT NULL,
		w REAL NOT NULL,
		r REAL NOT NULL,
		p REAL NOT NULL,
		d REAL NOT NULL,
		b REAL NOT NULL,
		PRIMARY KEY (run_id, epoch)
	);

	CREATE INDEX IF NOT EXISTS idx_trace_run ON trace(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunRow is the stored summary of one run.
type RunRow struct {
	ID           string  `db:"id"`
	CreatedAt    string  `db:"created_at"`
	Label        string  `db:"label"`
	Horizon      int     `db:"horizon"`
	DiscountRate float64 `db:"discount_rate"`
	EventMode    bool    `db:"event_mode"`
	Investment   float64 `db:"investment"`
	Damage       float64 `db:"damage"`
	Infeasible   bool    `db:"infeasible"`
}

// SaveRun stores a completed run and its trace, returning the new run ID.
func (db *DB) SaveRun(label string, horizon int, discountRate float64, eventMode bool, res engine.Result) (string, error) {
	id := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, label, horizon, discount_rate, event_mode, investment, damage, infeasible)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), label, horizon, discountRate,
		eventMode, res.Investment, res.Damage, res.Infeasible,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if len(res.Trace) > 0 {
		stmt, err := tx.Preparex(`INSERT INTO trace
			(run_id, epoch, investment, damage, w, r, p, d, b)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return "", err
		}
		defer stmt.Close()

		for _, rec := range res.Trace {
			v := rec.Vector
			if _, err := stmt.Exec(id, rec.Epoch, rec.Investment, rec.Damage,
				v.W, v.R, v.P, v.D, v.B); err != nil {
				return "", fmt.Errorf("insert trace epoch %d: %w", rec.Epoch, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("run saved", "id", id, "label", label, "epochs", len(res.Trace))
	return id, nil
}

// LoadTrace returns the per-epoch trace of a stored run.
func (db *DB) LoadTrace(runID string) ([]engine.EpochRecord, error) {
	rows, err := db.conn.Queryx(
		`SELECT epoch, investment, damage, w, r, p, d, b
		 FROM trace WHERE run_id = ? ORDER BY epoch`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []engine.EpochRecord
	for rows.Next() {
		var rec engine.EpochRecord
		if err := rows.Scan(&rec.Epoch, &rec.Investment, &rec.Damage,
			&rec.Vector.W, &rec.Vector.R, &rec.Vector.P, &rec.Vector.D, &rec.Vector.B); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// RecentRuns returns the most recent N run summaries.
func (db *DB) RecentRuns(limit int) ([]RunRow, error) {
	var runs []RunRow
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_at DESC LIMIT ?", limit)
	return runs, err
}
