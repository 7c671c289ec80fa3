package core

import (
	"context"
	"time"
)

// Classifier derives a risk verdict from a message. Implementations must be
// pure and safe for unbounded concurrent use.
type Classifier interface {
	// Analyze classifies a single message
	Analyze(msg Message) Analysis
}

// ThreatStore is the append-only durable log of every produced verdict.
// No update or delete is exposed; corrections are appended as superseding
// records. Readers observe at least the writes completed before the call
// started.
type ThreatStore interface {
	// Append persists an analysis, assigning a strictly increasing id and a
	// server timestamp when the record carries none
	Append(ctx context.Context, analysis *Analysis) (int64, error)

	// QueryWindow aggregates counts over [start, end], both inclusive
	QueryWindow(ctx context.Context, start, end time.Time) (WindowCounts, error)

	// TopReasonSets groups phishing verdicts by canonical reason set and
	// returns the most frequent, ordered per RankPatterns
	TopReasonSets(ctx context.Context, limit int) ([]PatternEntry, error)

	// Close releases the underlying storage
	Close() error
}
