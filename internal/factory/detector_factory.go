package factory

import (
	"fmt"

	"github.com/phishguard/phishguard/internal/config"
	"github.com/phishguard/phishguard/internal/detection"
	"go.uber.org/zap"
)

// DetectorFactory creates classifiers from the configured rule tables
type DetectorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDetectorFactory creates a new detector factory
func NewDetectorFactory(cfg *config.Config, logger *zap.Logger) *DetectorFactory {
	return &DetectorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateDetector builds a detector with rule tables from the configuration
func (f *DetectorFactory) CreateDetector() (*detection.Detector, error) {
	d := f.cfg.GetDetection()

	rules := &detection.Rules{
		TrustedSenders:        d.TrustedSenders,
		TrustedCountryCodes:   d.TrustedCountryCodes,
		SuspiciousSenderTerms: d.SuspiciousSenderTerms,
		Keywords:              d.Keywords,
		Banks:                 d.Banks,
		Telecoms:              d.Telecoms,
		UrgencyTerms:          d.UrgencyTerms,
		PrizeTerms:            d.PrizeTerms,
		WinTerms:              d.WinTerms,
		CurrencyPattern:       d.CurrencyPattern,
		ShortenerDomains:      d.ShortenerDomains,
		URLTerms:              d.URLTerms,
		MinTokens:             d.MinTokens,
		HighThreshold:         d.HighThreshold,
		MediumThreshold:       d.MediumThreshold,
		LowThreshold:          d.LowThreshold,
	}

	detector, err := detection.NewDetector(rules, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create detector: %w", err)
	}

	f.logger.Debug("Created detector",
		zap.Int("keywords", len(rules.Keywords)),
		zap.Int("trusted_senders", len(rules.TrustedSenders)))
	return detector, nil
}
