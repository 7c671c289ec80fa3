package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/phishguard/phishguard/internal/core"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the ThreatStore interface.
// The threats table is append-only; AUTOINCREMENT serializes surrogate key
// assignment, and each read runs as a single statement so it observes every
// append committed before the call started.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (or creates) the SQLite threat database
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w: %w", ErrStoreUnavailable, err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS threats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_content TEXT,
			sender TEXT,
			is_phishing BOOLEAN,
			threat_level TEXT,
			confidence INTEGER,
			sender_risk INTEGER,
			content_risk INTEGER,
			url_risk INTEGER,
			reasons TEXT,
			timestamp DATETIME
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w: %w", ErrStoreUnavailable, err)
	}

	// Index on timestamp for window aggregation
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_threats_timestamp ON threats(timestamp)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w: %w", ErrStoreUnavailable, err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Append persists an analysis and assigns the next surrogate id
func (s *SQLiteStore) Append(ctx context.Context, analysis *core.Analysis) (int64, error) {
	if analysis.Timestamp.IsZero() {
		analysis.Timestamp = time.Now().UTC()
	}

	reasons, err := json.Marshal(analysis.Reasons)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize reasons: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO threats
		(message_content, sender, is_phishing, threat_level, confidence,
		 sender_risk, content_risk, url_risk, reasons, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		analysis.MessageContent,
		analysis.Sender,
		analysis.IsPhishing,
		string(analysis.ThreatLevel),
		analysis.Confidence,
		analysis.SenderRisk,
		analysis.ContentRisk,
		analysis.URLRisk,
		string(reasons),
		analysis.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert threat record: %w: %w", ErrStoreUnavailable, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}

	analysis.ID = id
	s.logger.Debug("Appended threat record", zap.Int64("id", id))
	return id, nil
}

// QueryWindow aggregates counts over [start, end], both inclusive.
// Timestamps are stored as RFC3339 UTC so string comparison orders them.
func (s *SQLiteStore) QueryWindow(ctx context.Context, start, end time.Time) (core.WindowCounts, error) {
	var counts core.WindowCounts

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_phishing = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN threat_level = 'high' THEN 1 ELSE 0 END), 0)
		FROM threats
		WHERE timestamp >= ? AND timestamp <= ?
	`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	).Scan(&counts.Total, &counts.Phishing, &counts.HighRisk)
	if err != nil {
		return core.WindowCounts{}, fmt.Errorf("failed to query window: %w", err)
	}

	return counts, nil
}

// TopReasonSets groups phishing records by canonical reason set
func (s *SQLiteStore) TopReasonSets(ctx context.Context, limit int) ([]core.PatternEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT reasons, COUNT(*) AS count
		FROM threats
		WHERE is_phishing = 1
		GROUP BY reasons
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reason sets: %w", err)
	}
	defer rows.Close()

	raw := make([]core.PatternEntry, 0)
	for rows.Next() {
		var serialized string
		var entry core.PatternEntry
		if err := rows.Scan(&serialized, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan reason set: %w", err)
		}
		if err := json.Unmarshal([]byte(serialized), &entry.Reasons); err != nil {
			return nil, fmt.Errorf("failed to parse reasons: %w", err)
		}
		raw = append(raw, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reason sets: %w", err)
	}

	return core.RankPatterns(raw, limit), nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	return nil
}
