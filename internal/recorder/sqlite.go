package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists dashboard activity to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tools can read while the dashboard writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT,
			price          REAL,
			previous_close REAL,
			session_state  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_ts ON quote_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_symbol ON quote_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS forecast_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT,
			forecast_price REAL,
			min_confidence REAL,
			max_confidence REAL,
			appended       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecast_ts ON forecast_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS model_updates (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT,
			ok        INTEGER,
			note      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS refresh_failures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			task      TEXT,
			symbol    TEXT,
			reason    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failure_ts ON refresh_failures(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuote(snap *QuoteSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO quote_snapshots
		(timestamp, symbol, price, previous_close, session_state)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Price, snap.PreviousClose, snap.SessionState,
	)
	return err
}

func (r *SQLiteRecorder) RecordForecast(evt *ForecastEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO forecast_events
		(timestamp, symbol, forecast_price, min_confidence, max_confidence, appended)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.ForecastPrice,
		evt.MinConfidence, evt.MaxConfidence, evt.Appended,
	)
	return err
}

func (r *SQLiteRecorder) RecordModelUpdate(evt *ModelUpdateEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO model_updates
		(timestamp, symbol, ok, note)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.OK, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordFailure(evt *RefreshFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO refresh_failures
		(timestamp, task, symbol, reason)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Task, evt.Symbol, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
