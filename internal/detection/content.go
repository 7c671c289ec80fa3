package detection

import "strings"

const maxContentRisk = 5

// contentRisk scores the message text: one point per matched keyword, plus
// co-occurrence bonuses for bank names with urgency terms, telecom brands
// with prize terms, and currency amounts with win terms. The total is
// clamped to [0, maxContentRisk] so no single noisy heuristic dominates.
func (d *Detector) contentRisk(content string) Signal {
	var sig Signal
	risk := 0
	lower := strings.ToLower(content)

	for _, keyword := range d.rules.Keywords {
		if strings.Contains(lower, keyword) {
			risk++
			sig.Checks = append(sig.Checks, "keyword: "+keyword)
		}
	}

	if containsAny(lower, d.rules.Banks) && containsAny(lower, d.rules.UrgencyTerms) {
		risk += 2
		sig.Checks = append(sig.Checks, "bank name with urgency term")
	}

	if containsAny(lower, d.rules.Telecoms) && containsAny(lower, d.rules.PrizeTerms) {
		risk += 2
		sig.Checks = append(sig.Checks, "telecom brand with prize term")
	}

	if d.currencyRe.MatchString(content) && containsAny(lower, d.rules.WinTerms) {
		risk += 2
		sig.Checks = append(sig.Checks, "currency amount with win term")
	}

	if risk > maxContentRisk {
		risk = maxContentRisk
	}
	sig.Risk = risk
	return sig
}
