package analytics

import (
	"context"
	"fmt"

	"github.com/phishguard/phishguard/internal/core"
)

// PatternMiner frequency-ranks the distinct reason sets among phishing
// verdicts. It never feeds back into classification.
type PatternMiner struct {
	store core.ThreatStore
}

// NewPatternMiner creates a new pattern miner over the given store
func NewPatternMiner(store core.ThreatStore) *PatternMiner {
	return &PatternMiner{store: store}
}

// Top returns up to limit canonical reason sets ordered by descending
// frequency, ties broken by the lexicographically smallest canonical key
func (m *PatternMiner) Top(ctx context.Context, limit int) ([]core.PatternEntry, error) {
	patterns, err := m.store.TopReasonSets(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to mine threat patterns: %w", err)
	}
	return patterns, nil
}
