package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ThreatLevel is the discrete classification label for a message
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// Detection reasons, appended in fixed order: sender, content, url.
const (
	ReasonSuspiciousSender = "suspicious sender pattern"
	ReasonPhishingKeywords = "contains phishing keywords"
	ReasonSuspiciousLinks  = "contains suspicious links"
)

// Message represents an SMS message submitted for analysis
type Message struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ParseMessages decodes a batch source into the expected message-list
// shape. An unparseable source fails the whole batch before any
// classification is attempted.
func ParseMessages(data []byte) ([]Message, error) {
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("malformed batch input: %w", err)
	}
	return messages, nil
}

// Analysis is the verdict produced for a single message. It is immutable
// once produced; the store assigns ID and defaults Timestamp on insert.
type Analysis struct {
	ID             int64       `json:"id,omitempty"`
	IsPhishing     bool        `json:"is_phishing"`
	Confidence     int         `json:"confidence"`
	ThreatLevel    ThreatLevel `json:"threat_level"`
	Reasons        []string    `json:"reasons"`
	SenderRisk     int         `json:"sender_risk"`
	ContentRisk    int         `json:"content_risk"`
	URLRisk        int         `json:"url_risk"`
	MessageContent string      `json:"message_content"`
	Sender         string      `json:"sender"`
	Invalid        bool        `json:"invalid,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}

// TotalRisk returns the aggregate risk score across all signals
func (a *Analysis) TotalRisk() int {
	return a.SenderRisk + a.ContentRisk + a.URLRisk
}

// BatchResult summarizes the classification of an ordered batch of messages
type BatchResult struct {
	ProcessingID    string     `json:"processing_id"`
	TotalMessages   int        `json:"total_messages"`
	PhishingCount   int        `json:"phishing_count"`
	HighRiskCount   int        `json:"high_risk_count"`
	MediumRiskCount int        `json:"medium_risk_count"`
	LowRiskCount    int        `json:"low_risk_count"`
	Analyses        []Analysis `json:"analyses"`
}

// PhishingRate returns the phishing share of the batch as a percentage
func (r *BatchResult) PhishingRate() float64 {
	if r.TotalMessages == 0 {
		return 0
	}
	return float64(r.PhishingCount) / float64(r.TotalMessages) * 100
}

// WindowCounts holds the aggregate counts for a query window
type WindowCounts struct {
	Total    int `json:"total"`
	Phishing int `json:"phishing"`
	HighRisk int `json:"high_risk"`
}

// StatSnapshot is a derived, on-demand view of the store for a period
type StatSnapshot struct {
	PeriodDays       int     `json:"period_days"`
	TotalMessages    int     `json:"total_messages"`
	PhishingMessages int     `json:"phishing_messages"`
	HighRiskMessages int     `json:"high_risk_messages"`
	PhishingRate     float64 `json:"phishing_rate"`
}

// PatternEntry is a frequency-ranked canonical reason set among phishing verdicts
type PatternEntry struct {
	Reasons []string `json:"reasons"`
	Count   int      `json:"count"`
}

// ThreatReport is the composed analytics document handed to CLI/UI consumers
type ThreatReport struct {
	GeneratedAt       time.Time      `json:"generated_at"`
	Summary           StatSnapshot   `json:"summary"`
	TopThreatPatterns []PatternEntry `json:"top_threat_patterns"`
	Recommendations   []string       `json:"recommendations"`
}

// CanonicalReasons returns a sorted copy of a reason list, giving an
// order-independent representation of which detections fired.
func CanonicalReasons(reasons []string) []string {
	canonical := make([]string, len(reasons))
	copy(canonical, reasons)
	sort.Strings(canonical)
	return canonical
}

// PatternKey derives the grouping key for a reason set
func PatternKey(reasons []string) string {
	return strings.Join(CanonicalReasons(reasons), "|")
}

// RankPatterns merges raw pattern entries by canonical reason set and returns
// the top entries ordered by descending count, ties broken by the
// lexicographically smallest canonical key.
func RankPatterns(raw []PatternEntry, limit int) []PatternEntry {
	merged := make(map[string]*PatternEntry)
	for _, entry := range raw {
		key := PatternKey(entry.Reasons)
		if existing, ok := merged[key]; ok {
			existing.Count += entry.Count
			continue
		}
		merged[key] = &PatternEntry{
			Reasons: CanonicalReasons(entry.Reasons),
			Count:   entry.Count,
		}
	}

	ranked := make([]PatternEntry, 0, len(merged))
	for _, entry := range merged {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return PatternKey(ranked[i].Reasons) < PatternKey(ranked[j].Reasons)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
