package detection

import "strings"

// urlRisk scores every http(s) URL embedded in the message: shortener
// domains, raw IP hosts, and suspicious path terms each contribute. The sum
// is unbounded across URLs so multiple suspicious links keep escalating.
func (d *Detector) urlRisk(content string) Signal {
	var sig Signal
	risk := 0

	for _, url := range urlPattern.FindAllString(content, -1) {
		lower := strings.ToLower(url)

		if containsAny(lower, d.rules.ShortenerDomains) {
			risk += 2
			sig.Checks = append(sig.Checks, "link shortener: "+url)
		}

		if ipPattern.MatchString(url) {
			risk += 3
			sig.Checks = append(sig.Checks, "raw IP address: "+url)
		}

		if containsAny(lower, d.rules.URLTerms) {
			risk += 2
			sig.Checks = append(sig.Checks, "suspicious term in URL: "+url)
		}
	}

	sig.Risk = risk
	return sig
}
