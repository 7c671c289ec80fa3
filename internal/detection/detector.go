package detection

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/phishguard/phishguard/internal/core"
	"go.uber.org/zap"
)

var (
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	ipPattern        = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
	shortCodePattern = regexp.MustCompile(`^\d{3,6}$`)
)

// Signal is one extractor's contribution to the total risk: the clamped
// score plus the names of the checks that fired, kept for audit logging.
type Signal struct {
	Risk   int
	Checks []string
}

// Detector is the deterministic, rule-based phishing classifier. It is
// stateless beyond its immutable rule tables and safe for concurrent use.
type Detector struct {
	rules      *Rules
	currencyRe *regexp.Regexp
	logger     *zap.Logger
}

// NewDetector creates a detector from the given rule tables
func NewDetector(rules *Rules, logger *zap.Logger) (*Detector, error) {
	currencyRe, err := regexp.Compile(rules.CurrencyPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid currency pattern: %w", err)
	}

	return &Detector{
		rules:      rules,
		currencyRe: currencyRe,
		logger:     logger,
	}, nil
}

// Analyze classifies a single message. Identical inputs against identical
// rule tables always reproduce an identical verdict, excluding timestamp.
func (d *Detector) Analyze(msg core.Message) core.Analysis {
	timestamp := msg.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	analysis := core.Analysis{
		ThreatLevel:    core.ThreatLow,
		Reasons:        []string{},
		MessageContent: msg.Content,
		Sender:         msg.Sender,
		Timestamp:      timestamp,
	}

	// Inputs too short to carry signal yield a diagnostic verdict, not an
	// error.
	if len(strings.Fields(msg.Content)) < d.rules.MinTokens {
		analysis.Invalid = true
		d.logger.Debug("Message too short to classify",
			zap.String("sender", msg.Sender))
		return analysis
	}

	sender := d.senderRisk(msg.Sender)
	content := d.contentRisk(msg.Content)
	url := d.urlRisk(msg.Content)

	analysis.SenderRisk = sender.Risk
	analysis.ContentRisk = content.Risk
	analysis.URLRisk = url.Risk

	total := analysis.TotalRisk()
	switch {
	case total >= d.rules.HighThreshold:
		analysis.IsPhishing = true
		analysis.ThreatLevel = core.ThreatHigh
		analysis.Confidence = min(95, total*10)
	case total >= d.rules.MediumThreshold:
		analysis.IsPhishing = true
		analysis.ThreatLevel = core.ThreatMedium
		analysis.Confidence = total * 8
	case total >= d.rules.LowThreshold:
		analysis.ThreatLevel = core.ThreatLow
		analysis.Confidence = total * 5
	}

	// Reasons depend only on the component scores, never on the thresholds,
	// so low non-alerting verdicts stay auditable.
	if analysis.SenderRisk > 0 {
		analysis.Reasons = append(analysis.Reasons, core.ReasonSuspiciousSender)
	}
	if analysis.ContentRisk > 0 {
		analysis.Reasons = append(analysis.Reasons, core.ReasonPhishingKeywords)
	}
	if analysis.URLRisk > 0 {
		analysis.Reasons = append(analysis.Reasons, core.ReasonSuspiciousLinks)
	}

	if len(analysis.Reasons) > 0 {
		d.logger.Debug("Risk signals fired",
			zap.String("sender", msg.Sender),
			zap.Int("total_risk", total),
			zap.Strings("sender_checks", sender.Checks),
			zap.Strings("content_checks", content.Checks),
			zap.Strings("url_checks", url.Checks))
	}

	return analysis
}

// containsAny reports whether text contains any of the given substrings
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
