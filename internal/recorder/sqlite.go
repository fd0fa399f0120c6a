package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
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

	// WAL mode so dashboards can read while the agent writes.
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
		`CREATE TABLE IF NOT EXISTS stage_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			ticker          TEXT NOT NULL,
			close           REAL,
			passed          INTEGER,
			core_score      INTEGER,
			bonus_score     INTEGER,
			failed_criteria TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stage_ticker_ts ON stage_snapshots(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS accumulation_snapshots (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			ticker             TEXT NOT NULL,
			sentiment_score    REAL,
			classification     TEXT,
			confirmed_by_trend INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accum_ticker_ts ON accumulation_snapshots(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS screen_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			universe    INTEGER,
			match_count INTEGER,
			matches     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_screen_ts ON screen_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordStage(snap *StageSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	failed := make([]string, len(snap.Verdict.FailedCriteria))
	for i, c := range snap.Verdict.FailedCriteria {
		failed[i] = string(c)
	}

	_, err := r.db.Exec(`INSERT INTO stage_snapshots
		(timestamp, ticker, close, passed, core_score, bonus_score, failed_criteria)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Ticker, snap.Close,
		boolToInt(snap.Verdict.Passed), snap.Verdict.CoreScore, snap.Verdict.BonusScore,
		strings.Join(failed, ","),
	)
	return err
}

func (r *SQLiteRecorder) RecordAccumulation(snap *AccumulationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO accumulation_snapshots
		(timestamp, ticker, sentiment_score, classification, confirmed_by_trend)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), snap.Ticker,
		snap.Result.SentimentScore, string(snap.Result.Classification),
		boolToInt(snap.Result.ConfirmedByTrend),
	)
	return err
}

func (r *SQLiteRecorder) RecordScreen(evt *ScreenEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO screen_events
		(timestamp, universe, match_count, matches)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Universe, len(evt.Matches), strings.Join(evt.Matches, ","),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
