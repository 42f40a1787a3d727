package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
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

	// WAL mode for better concurrent read performance (Grafana reads while bot writes).
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
		`CREATE TABLE IF NOT EXISTS report_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT,
			lookback_days    INTEGER,
			current_price    REAL,
			mean_return      REAL,
			volatility       REAL,
			min_return       REAL,
			max_return       REAL,
			observations     INTEGER,
			first_half_vol   REAL,
			second_half_vol  REAL,
			vol_change       REAL,
			vol_change_pct   REAL,
			has_comparison   INTEGER,
			risk_level       TEXT,
			commentary       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_ts ON report_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alert_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT,
			volatility    REAL,
			rolling_mean  REAL,
			threshold     REAL,
			elevated_days INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alert_ts ON alert_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReport(snap *ReportSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := snap.Report
	stats := rep.Summary

	var firstVol, secondVol, change, changePct float64
	hasComparison := 0
	if cmp := rep.Comparison; cmp != nil {
		hasComparison = 1
		firstVol = cmp.FirstPeriodVolatility
		secondVol = cmp.SecondPeriodVolatility
		change = cmp.VolatilityChange
		changePct = cmp.VolatilityChangePercent
	}

	var level, commentary string
	if snap.Assessment != nil {
		level = string(snap.Assessment.Level)
		commentary = snap.Assessment.Commentary
	}

	_, err := r.db.Exec(`INSERT INTO report_snapshots
		(timestamp, symbol, lookback_days, current_price,
		 mean_return, volatility, min_return, max_return, observations,
		 first_half_vol, second_half_vol, vol_change, vol_change_pct, has_comparison,
		 risk_level, commentary)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rep.Symbol, rep.LookbackDays, rep.CurrentPrice,
		stats.Mean, stats.Volatility, stats.Min, stats.Max, stats.Count,
		firstVol, secondVol, change, changePct, hasComparison,
		level, commentary,
	)
	return err
}

func (r *SQLiteRecorder) RecordAlert(evt *AlertEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alert_events
		(timestamp, symbol, volatility, rolling_mean, threshold, elevated_days)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.Volatility,
		evt.RollingMean, evt.Threshold, evt.ElevatedDays,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
