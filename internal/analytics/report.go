package analytics

import (
	"context"
	"time"

	"github.com/phishguard/phishguard/internal/core"
	"go.uber.org/zap"
)

// Analyzer is the reporting facade composing the statistics engine, the
// pattern miner, and the recommender into one report document. It is
// stateless beyond reading the store.
type Analyzer struct {
	stats       *StatsEngine
	miner       *PatternMiner
	recommender *Recommender
	logger      *zap.Logger
	periodDays  int
	topPatterns int
}

// NewAnalyzer creates the reporting facade
func NewAnalyzer(
	stats *StatsEngine,
	miner *PatternMiner,
	recommender *Recommender,
	logger *zap.Logger,
	periodDays int,
	topPatterns int,
) *Analyzer {
	return &Analyzer{
		stats:       stats,
		miner:       miner,
		recommender: recommender,
		logger:      logger,
		periodDays:  periodDays,
		topPatterns: topPatterns,
	}
}

// GenerateReport builds the threat report from current store state
func (a *Analyzer) GenerateReport(ctx context.Context) (core.ThreatReport, error) {
	summary, err := a.stats.Snapshot(ctx, a.periodDays)
	if err != nil {
		return core.ThreatReport{}, err
	}

	patterns, err := a.miner.Top(ctx, a.topPatterns)
	if err != nil {
		return core.ThreatReport{}, err
	}

	report := core.ThreatReport{
		GeneratedAt:       time.Now().UTC(),
		Summary:           summary,
		TopThreatPatterns: patterns,
		Recommendations:   a.recommender.Build(summary, patterns),
	}

	a.logger.Debug("Generated threat report",
		zap.Int("total_messages", summary.TotalMessages),
		zap.Float64("phishing_rate", summary.PhishingRate),
		zap.Int("patterns", len(patterns)))
	return report, nil
}
