package analytics

import "github.com/phishguard/phishguard/internal/core"

// Conditional advisories, each emitted at most once per report.
const (
	recHighRate = "High phishing rate detected. Consider enabling strict mode."
	recLinks    = "Frequent suspicious links detected. Avoid clicking unknown URLs."
	recUrgency  = "Urgency-based scams detected. Be cautious of time-sensitive messages."
)

// generalRecommendations always close a report, in this order.
var generalRecommendations = []string{
	"Never share banking details via SMS",
	"Verify unexpected prize notifications directly with companies",
	"Use official banking apps for account verification",
	"Enable two-factor authentication where available",
}

// Recommender derives advisory text from a statistics snapshot and the
// mined threat patterns.
type Recommender struct {
	highRateThreshold float64
}

// NewRecommender creates a recommender that flags phishing rates above the
// given percentage threshold
func NewRecommender(highRateThreshold float64) *Recommender {
	return &Recommender{highRateThreshold: highRateThreshold}
}

// Build evaluates the advisory rules in fixed order: rate, links, urgency,
// then the general recommendations.
func (r *Recommender) Build(stats core.StatSnapshot, patterns []core.PatternEntry) []string {
	recommendations := make([]string, 0, len(generalRecommendations)+3)

	if stats.PhishingRate > r.highRateThreshold {
		recommendations = append(recommendations, recHighRate)
	}
	if anyPatternContains(patterns, core.ReasonSuspiciousLinks) {
		recommendations = append(recommendations, recLinks)
	}
	if anyPatternContains(patterns, core.ReasonPhishingKeywords) {
		recommendations = append(recommendations, recUrgency)
	}

	return append(recommendations, generalRecommendations...)
}

// anyPatternContains reports whether any mined pattern includes the reason
func anyPatternContains(patterns []core.PatternEntry, reason string) bool {
	for _, pattern := range patterns {
		for _, r := range pattern.Reasons {
			if r == reason {
				return true
			}
		}
	}
	return false
}
