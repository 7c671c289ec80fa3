package config

// DetectionConfig represents the rule tables and thresholds for the classifier
type DetectionConfig struct {
	TrustedSenders        []string
	TrustedCountryCodes   []string
	SuspiciousSenderTerms []string
	Keywords              []string
	Banks                 []string
	Telecoms              []string
	UrgencyTerms          []string
	PrizeTerms            []string
	WinTerms              []string
	CurrencyPattern       string
	ShortenerDomains      []string
	URLTerms              []string
	MinTokens             int
	HighThreshold         int
	MediumThreshold       int
	LowThreshold          int
}

// StoreConfig represents the configuration for the threat record store
type StoreConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// ReportConfig represents the configuration for threat report generation
type ReportConfig struct {
	PeriodDays        int
	TopPatterns       int
	HighRateThreshold float64
}

// GetDetection returns the detection configuration
func (c *Config) GetDetection() DetectionConfig {
	return DetectionConfig{
		TrustedSenders:        c.GetStringSlice("detection.trusted_senders"),
		TrustedCountryCodes:   c.GetStringSlice("detection.trusted_country_codes"),
		SuspiciousSenderTerms: c.GetStringSlice("detection.suspicious_sender_terms"),
		Keywords:              c.GetStringSlice("detection.keywords"),
		Banks:                 c.GetStringSlice("detection.banks"),
		Telecoms:              c.GetStringSlice("detection.telecoms"),
		UrgencyTerms:          c.GetStringSlice("detection.urgency_terms"),
		PrizeTerms:            c.GetStringSlice("detection.prize_terms"),
		WinTerms:              c.GetStringSlice("detection.win_terms"),
		CurrencyPattern:       c.GetString("detection.currency_pattern"),
		ShortenerDomains:      c.GetStringSlice("detection.shortener_domains"),
		URLTerms:              c.GetStringSlice("detection.url_terms"),
		MinTokens:             c.GetInt("detection.min_tokens"),
		HighThreshold:         c.GetInt("detection.high_threshold"),
		MediumThreshold:       c.GetInt("detection.medium_threshold"),
		LowThreshold:          c.GetInt("detection.low_threshold"),
	}
}

// GetStore returns the store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
	}
}

// GetReport returns the report configuration
func (c *Config) GetReport() ReportConfig {
	return ReportConfig{
		PeriodDays:        c.GetInt("report.period_days"),
		TopPatterns:       c.GetInt("report.top_patterns"),
		HighRateThreshold: c.GetFloat64("report.high_rate_threshold"),
	}
}
