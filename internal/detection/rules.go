package detection

// Rules holds the immutable rule tables and thresholds driving the
// classifier. Instances are loaded from configuration at construction so
// the lists can be tested and extended independently of the scoring logic.
type Rules struct {
	// Sender rules
	TrustedSenders        []string
	TrustedCountryCodes   []string
	SuspiciousSenderTerms []string

	// Content rules
	Keywords        []string
	Banks           []string
	Telecoms        []string
	UrgencyTerms    []string
	PrizeTerms      []string
	WinTerms        []string
	CurrencyPattern string

	// URL rules
	ShortenerDomains []string
	URLTerms         []string

	// MinTokens is the minimum number of non-whitespace tokens a message
	// needs before classification is meaningful
	MinTokens int

	// Classification thresholds, evaluated high to low
	HighThreshold   int
	MediumThreshold int
	LowThreshold    int
}
