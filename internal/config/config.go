package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/phishguard/")
	v.AddConfigPath("$HOME/.phishguard")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("PHISHGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
//
// The detection rule tables default to lists tuned for African mobile money
// and banking SMS traffic; deployments override them per region via
// config.yaml or environment variables.
func setDefaults(v *viper.Viper) {
	// Sender rules
	v.SetDefault("detection.trusted_senders", []string{
		"MTN", "VODACOM", "SAFARICOM", "AIRTEL", "MPESA", "ABSABANK",
	})
	v.SetDefault("detection.trusted_country_codes", []string{
		"+27", "+234", "+254", "+233",
	})
	v.SetDefault("detection.suspicious_sender_terms", []string{
		"bank", "security", "alert", "update",
	})

	// Content rules
	v.SetDefault("detection.keywords", []string{
		"urgent", "immediately", "account suspended", "verify now",
		"click here", "limited time", "winner", "prize", "lottery",
		"bank alert", "security update", "password expired",
		"unauthorized login", "confirm your account", "free money",
		"bonus", "reward", "congratulations", "you have won",
	})
	v.SetDefault("detection.banks", []string{
		"absa", "standard bank", "fnb", "nedbank", "capitec",
		"ecobank", "uba", "zenith", "access bank", "gtbank",
		"first bank", "union bank", "fidelity", "polaris",
	})
	v.SetDefault("detection.telecoms", []string{
		"mtn", "vodacom", "safaricom", "airtel", "orange",
		"telkom", "cell c", "mpesa", "mobile money",
	})
	v.SetDefault("detection.urgency_terms", []string{
		"urgent", "verify", "suspended", "update",
	})
	v.SetDefault("detection.prize_terms", []string{
		"win", "prize", "free", "bonus",
	})
	v.SetDefault("detection.win_terms", []string{
		"win", "won", "prize", "reward",
	})
	v.SetDefault("detection.currency_pattern", `(?i)(R\s?\d+|₦\s?\d+|KSh\s?\d+|GHS\s?\d+|USD\s?\d+|ZAR\s?\d+)`)

	// URL rules
	v.SetDefault("detection.shortener_domains", []string{
		"bit.ly", "tinyurl", "goo.gl", "shorturl",
	})
	v.SetDefault("detection.url_terms", []string{
		"free", "win", "prize", "reward", "bonus", "claim",
	})

	// Classification thresholds
	v.SetDefault("detection.min_tokens", 2)
	v.SetDefault("detection.high_threshold", 7)
	v.SetDefault("detection.medium_threshold", 4)
	v.SetDefault("detection.low_threshold", 2)

	// Store defaults
	v.SetDefault("store.type", "sqlite")
	v.SetDefault("store.sqlite_path", "/data/phishguard.db")
	v.SetDefault("store.mysql_dsn", "user:password@tcp(localhost:3306)/phishguard")

	// Report defaults
	v.SetDefault("report.period_days", 30)
	v.SetDefault("report.top_patterns", 10)
	v.SetDefault("report.high_rate_threshold", 20.0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
