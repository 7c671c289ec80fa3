package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/phishguard/phishguard/internal/core"
	"go.uber.org/zap"
)

const mysqlTimeFormat = "2006-01-02 15:04:05"

// MySQLStore is a MySQL implementation of the ThreatStore interface for
// deployments that share one threat history across hosts.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore connects to MySQL and bootstraps the threats table
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w: %w", ErrStoreUnavailable, err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w: %w", ErrStoreUnavailable, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS threats (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			message_content TEXT,
			sender VARCHAR(255),
			is_phishing BOOLEAN,
			threat_level VARCHAR(16),
			confidence INT,
			sender_risk INT,
			content_risk INT,
			url_risk INT,
			reasons TEXT,
			timestamp DATETIME,
			INDEX idx_threats_timestamp (timestamp)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w: %w", ErrStoreUnavailable, err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Append persists an analysis and assigns the next surrogate id
func (s *MySQLStore) Append(ctx context.Context, analysis *core.Analysis) (int64, error) {
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
		analysis.Timestamp.UTC().Format(mysqlTimeFormat),
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

// QueryWindow aggregates counts over [start, end], both inclusive
func (s *MySQLStore) QueryWindow(ctx context.Context, start, end time.Time) (core.WindowCounts, error) {
	var counts core.WindowCounts

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_phishing = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN threat_level = 'high' THEN 1 ELSE 0 END), 0)
		FROM threats
		WHERE timestamp >= ? AND timestamp <= ?
	`,
		start.UTC().Format(mysqlTimeFormat),
		end.UTC().Format(mysqlTimeFormat),
	).Scan(&counts.Total, &counts.Phishing, &counts.HighRisk)
	if err != nil {
		return core.WindowCounts{}, fmt.Errorf("failed to query window: %w", err)
	}

	return counts, nil
}

// TopReasonSets groups phishing records by canonical reason set
func (s *MySQLStore) TopReasonSets(ctx context.Context, limit int) ([]core.PatternEntry, error) {
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
func (s *MySQLStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close MySQL database: %w", err)
	}
	return nil
}
