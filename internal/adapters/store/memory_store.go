package store

import (
	"context"
	"sync"
	"time"

	"github.com/phishguard/phishguard/internal/core"
	"go.uber.org/zap"
)

// MemoryStore is an in-memory implementation of the ThreatStore interface,
// used for tests and ephemeral demo runs. Appends serialize id assignment
// under the write lock; readers observe every append completed before the
// call started.
type MemoryStore struct {
	mu      sync.RWMutex
	records []core.Analysis
	nextID  int64
	logger  *zap.Logger
}

// NewMemoryStore creates a new in-memory threat store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		logger: logger,
	}
}

// Append persists an analysis and assigns the next surrogate id
func (s *MemoryStore) Append(ctx context.Context, analysis *core.Analysis) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *analysis
	record.ID = s.nextID
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	record.Reasons = append([]string(nil), analysis.Reasons...)

	s.records = append(s.records, record)
	s.nextID++

	analysis.ID = record.ID
	analysis.Timestamp = record.Timestamp
	s.logger.Debug("Appended threat record", zap.Int64("id", record.ID))
	return record.ID, nil
}

// QueryWindow aggregates counts over [start, end], both inclusive
func (s *MemoryStore) QueryWindow(ctx context.Context, start, end time.Time) (core.WindowCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts core.WindowCounts
	for i := range s.records {
		ts := s.records[i].Timestamp
		if ts.Before(start) || ts.After(end) {
			continue
		}
		counts.Total++
		if s.records[i].IsPhishing {
			counts.Phishing++
		}
		if s.records[i].ThreatLevel == core.ThreatHigh {
			counts.HighRisk++
		}
	}
	return counts, nil
}

// TopReasonSets groups phishing records by canonical reason set
func (s *MemoryStore) TopReasonSets(ctx context.Context, limit int) ([]core.PatternEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw := make([]core.PatternEntry, 0)
	for i := range s.records {
		if !s.records[i].IsPhishing {
			continue
		}
		raw = append(raw, core.PatternEntry{Reasons: s.records[i].Reasons, Count: 1})
	}
	return core.RankPatterns(raw, limit), nil
}

// Close releases nothing for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
