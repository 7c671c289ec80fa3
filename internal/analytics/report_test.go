package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/phishguard/phishguard/internal/adapters/store"
	"github.com/phishguard/phishguard/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAnalyzer(s core.ThreatStore) *Analyzer {
	return NewAnalyzer(
		NewStatsEngine(s),
		NewPatternMiner(s),
		NewRecommender(20.0),
		zap.NewNop(),
		30,
		10,
	)
}

func TestAnalyzer_GenerateReport_EmptyStore(t *testing.T) {
	s := store.NewMemoryStore(zap.NewNop())
	analyzer := newAnalyzer(s)

	report, err := analyzer.GenerateReport(context.Background())

	require.NoError(t, err)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 30, report.Summary.PeriodDays)
	assert.Zero(t, report.Summary.TotalMessages)
	assert.Zero(t, report.Summary.PhishingRate)
	assert.Empty(t, report.TopThreatPatterns)
	// The four general recommendations are always present
	require.Len(t, report.Recommendations, 4)
	assert.Equal(t, "Never share banking details via SMS", report.Recommendations[0])
}

func TestAnalyzer_GenerateReport_PopulatedStore(t *testing.T) {
	s := store.NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Append(ctx, &core.Analysis{
			IsPhishing:  true,
			ThreatLevel: core.ThreatHigh,
			Reasons:     []string{core.ReasonPhishingKeywords, core.ReasonSuspiciousLinks},
		})
		require.NoError(t, err)
	}
	_, err := s.Append(ctx, &core.Analysis{ThreatLevel: core.ThreatLow, Reasons: []string{}})
	require.NoError(t, err)

	report, err := newAnalyzer(s).GenerateReport(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, report.Summary.TotalMessages)
	assert.Equal(t, 3, report.Summary.PhishingMessages)
	assert.Equal(t, 3, report.Summary.HighRiskMessages)
	assert.InDelta(t, 75.0, report.Summary.PhishingRate, 0.001)

	require.Len(t, report.TopThreatPatterns, 1)
	assert.Equal(t, 3, report.TopThreatPatterns[0].Count)

	// Rate, link and urgency advisories fire before the general four
	require.Len(t, report.Recommendations, 7)
	assert.Contains(t, report.Recommendations[0], "High phishing rate")
	assert.Contains(t, report.Recommendations[1], "suspicious links")
	assert.Contains(t, report.Recommendations[2], "Urgency-based")
}

func TestStatsEngine_Snapshot_RateRounding(t *testing.T) {
	s := store.NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	_, err := s.Append(ctx, &core.Analysis{IsPhishing: true, ThreatLevel: core.ThreatHigh})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := s.Append(ctx, &core.Analysis{ThreatLevel: core.ThreatLow})
		require.NoError(t, err)
	}

	snapshot, err := NewStatsEngine(s).Snapshot(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, snapshot.PeriodDays)
	assert.Equal(t, 3, snapshot.TotalMessages)
	// 1/3 rounds to two decimals
	assert.InDelta(t, 33.33, snapshot.PhishingRate, 0.001)
}

func TestStatsEngine_Snapshot_ExcludesOldRecords(t *testing.T) {
	s := store.NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	_, err := s.Append(ctx, &core.Analysis{
		IsPhishing:  true,
		ThreatLevel: core.ThreatHigh,
		Timestamp:   time.Now().UTC().AddDate(0, 0, -40),
	})
	require.NoError(t, err)
	_, err = s.Append(ctx, &core.Analysis{ThreatLevel: core.ThreatLow})
	require.NoError(t, err)

	snapshot, err := NewStatsEngine(s).Snapshot(ctx, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalMessages)
	assert.Zero(t, snapshot.PhishingMessages)
}

func TestRecommender_Build(t *testing.T) {
	r := NewRecommender(20.0)

	tests := []struct {
		name      string
		stats     core.StatSnapshot
		patterns  []core.PatternEntry
		wantCount int
		wantFirst string
	}{
		{
			name:      "No signals yields only the general four",
			stats:     core.StatSnapshot{},
			patterns:  nil,
			wantCount: 4,
			wantFirst: "Never share banking details via SMS",
		},
		{
			name:      "High rate advisory",
			stats:     core.StatSnapshot{PhishingRate: 45.5},
			patterns:  nil,
			wantCount: 5,
			wantFirst: recHighRate,
		},
		{
			name:  "Rate at threshold does not fire",
			stats: core.StatSnapshot{PhishingRate: 20.0},
			patterns: []core.PatternEntry{
				{Reasons: []string{core.ReasonSuspiciousSender}, Count: 2},
			},
			wantCount: 4,
			wantFirst: "Never share banking details via SMS",
		},
		{
			name:  "Link advisory emitted once across patterns",
			stats: core.StatSnapshot{PhishingRate: 5},
			patterns: []core.PatternEntry{
				{Reasons: []string{core.ReasonSuspiciousLinks}, Count: 4},
				{Reasons: []string{core.ReasonSuspiciousLinks, core.ReasonSuspiciousSender}, Count: 2},
			},
			wantCount: 5,
			wantFirst: recLinks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendations := r.Build(tt.stats, tt.patterns)
			assert.Len(t, recommendations, tt.wantCount)
			assert.Equal(t, tt.wantFirst, recommendations[0])
		})
	}
}
