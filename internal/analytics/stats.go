package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/phishguard/phishguard/internal/core"
)

// StatsEngine computes time-windowed aggregates from the threat store. It
// is a read-only view; nothing is cached between calls.
type StatsEngine struct {
	store core.ThreatStore
}

// NewStatsEngine creates a new statistics engine over the given store
func NewStatsEngine(store core.ThreatStore) *StatsEngine {
	return &StatsEngine{store: store}
}

// Snapshot aggregates the window [now - days, now] at day granularity: the
// window opens at UTC midnight of the day `days` days ago and closes now,
// both endpoints inclusive.
func (e *StatsEngine) Snapshot(ctx context.Context, days int) (core.StatSnapshot, error) {
	now := time.Now().UTC()
	startDay := now.AddDate(0, 0, -days)
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, time.UTC)

	counts, err := e.store.QueryWindow(ctx, start, now)
	if err != nil {
		return core.StatSnapshot{}, fmt.Errorf("failed to aggregate window: %w", err)
	}

	snapshot := core.StatSnapshot{
		PeriodDays:       days,
		TotalMessages:    counts.Total,
		PhishingMessages: counts.Phishing,
		HighRiskMessages: counts.HighRisk,
	}
	if counts.Total > 0 {
		rate := float64(counts.Phishing) / float64(counts.Total) * 100
		snapshot.PhishingRate = math.Round(rate*100) / 100
	}
	return snapshot, nil
}
