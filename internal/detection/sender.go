package detection

import "strings"

// senderRisk scores the sender identity. Trusted identifiers and short
// codes subtract risk; untrusted international prefixes and institutional
// terms in the sender string add it. The result is clamped at zero.
func (d *Detector) senderRisk(sender string) Signal {
	var sig Signal
	risk := 0

	upper := strings.ToUpper(sender)
	for _, trusted := range d.rules.TrustedSenders {
		if strings.Contains(upper, strings.ToUpper(trusted)) {
			risk--
			sig.Checks = append(sig.Checks, "trusted sender identifier")
			break
		}
	}

	// Short codes are presumptively legitimate
	if shortCodePattern.MatchString(sender) {
		risk--
		sig.Checks = append(sig.Checks, "short code sender")
	}

	if strings.HasPrefix(sender, "+") && !containsAny(sender, d.rules.TrustedCountryCodes) {
		risk += 2
		sig.Checks = append(sig.Checks, "untrusted international prefix")
	}

	lower := strings.ToLower(sender)
	if containsAny(lower, d.rules.SuspiciousSenderTerms) {
		risk++
		sig.Checks = append(sig.Checks, "institutional term in sender")
	}

	if risk < 0 {
		risk = 0
	}
	sig.Risk = risk
	return sig
}
