package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/phishguard/phishguard/internal/analytics"
	"github.com/phishguard/phishguard/internal/config"
	"github.com/phishguard/phishguard/internal/core"
	"github.com/phishguard/phishguard/internal/detection"
	"github.com/phishguard/phishguard/internal/factory"
	"github.com/phishguard/phishguard/internal/logging"
)

// BuildContainer creates and configures a dependency injection container.
// The CLI flags take precedence over the logging config section: a --verbose
// or --json-output invocation gets a console logger at the requested level,
// everything else follows logging.level and logging.format.
func BuildContainer(verbose, jsonFormat bool) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(cfg *config.Config) (*zap.Logger, error) {
		if verbose || jsonFormat {
			return logging.InitConsoleLogger(verbose, jsonFormat)
		}
		return logging.InitLogger(cfg)
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewDetectorFactory); err != nil {
		return nil, err
	}

	// Register detector and classifier port
	if err := container.Provide(func(f *factory.DetectorFactory) (*detection.Detector, error) {
		return f.CreateDetector()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(d *detection.Detector) core.Classifier {
		return d
	}); err != nil {
		return nil, err
	}

	// Register threat store
	if err := container.Provide(func(f *factory.StoreFactory) (core.ThreatStore, error) {
		return f.CreateThreatStore()
	}); err != nil {
		return nil, err
	}

	// Register guard service
	if err := container.Provide(core.NewGuardService); err != nil {
		return nil, err
	}

	// Register analytics
	if err := container.Provide(analytics.NewStatsEngine); err != nil {
		return nil, err
	}
	if err := container.Provide(analytics.NewPatternMiner); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config) *analytics.Recommender {
		return analytics.NewRecommender(cfg.GetReport().HighRateThreshold)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(
		stats *analytics.StatsEngine,
		miner *analytics.PatternMiner,
		recommender *analytics.Recommender,
		cfg *config.Config,
		logger *zap.Logger,
	) *analytics.Analyzer {
		reportCfg := cfg.GetReport()
		return analytics.NewAnalyzer(stats, miner, recommender, logger,
			reportCfg.PeriodDays, reportCfg.TopPatterns)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
