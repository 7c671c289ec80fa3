package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuardService is the core service combining classification and persistence.
// Classification never depends on the store; a store failure is reported to
// the caller but never withholds a verdict.
type GuardService struct {
	classifier Classifier
	store      ThreatStore
	logger     *zap.Logger
}

// NewGuardService creates a new guard service
func NewGuardService(classifier Classifier, store ThreatStore, logger *zap.Logger) *GuardService {
	return &GuardService{
		classifier: classifier,
		store:      store,
		logger:     logger,
	}
}

// Classify analyzes a single message without persisting the verdict
func (s *GuardService) Classify(content, sender string) Analysis {
	return s.classifier.Analyze(Message{Content: content, Sender: sender})
}

// ClassifyAndRecord analyzes a message and appends the verdict to the store.
// The returned Analysis is always valid even when the append fails; the
// error reports the persistence failure only. Invalid (too short) inputs are
// diagnostic outcomes and are not persisted.
func (s *GuardService) ClassifyAndRecord(ctx context.Context, content, sender string) (Analysis, error) {
	analysis := s.Classify(content, sender)
	if analysis.Invalid {
		s.logger.Debug("Skipping persistence of invalid input",
			zap.String("sender", sender))
		return analysis, nil
	}

	id, err := s.store.Append(ctx, &analysis)
	if err != nil {
		s.logger.Error("Failed to record analysis",
			zap.Error(err),
			zap.String("sender", sender),
			zap.String("threat_level", string(analysis.ThreatLevel)))
		return analysis, fmt.Errorf("failed to record analysis: %w", err)
	}

	s.logger.Debug("Recorded analysis",
		zap.Int64("id", id),
		zap.Bool("is_phishing", analysis.IsPhishing),
		zap.String("threat_level", string(analysis.ThreatLevel)))
	return analysis, nil
}

// Record appends an already produced analysis to the store
func (s *GuardService) Record(ctx context.Context, analysis *Analysis) (int64, error) {
	id, err := s.store.Append(ctx, analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to record analysis: %w", err)
	}
	return id, nil
}

// ClassifyBatch analyzes an ordered batch of messages and tallies verdicts
// by threat level. Each message is classified independently.
func ClassifyBatch(classifier Classifier, messages []Message) BatchResult {
	result := BatchResult{
		ProcessingID:  uuid.New().String(),
		TotalMessages: len(messages),
		Analyses:      make([]Analysis, 0, len(messages)),
	}

	for _, msg := range messages {
		analysis := classifier.Analyze(msg)
		result.Analyses = append(result.Analyses, analysis)

		if analysis.IsPhishing {
			result.PhishingCount++
		}
		switch analysis.ThreatLevel {
		case ThreatHigh:
			result.HighRiskCount++
		case ThreatMedium:
			result.MediumRiskCount++
		default:
			result.LowRiskCount++
		}
	}

	return result
}

// ClassifyBatch analyzes a batch through the service's classifier
func (s *GuardService) ClassifyBatch(messages []Message) BatchResult {
	result := ClassifyBatch(s.classifier, messages)
	s.logger.Info("Classified batch",
		zap.String("processing_id", result.ProcessingID),
		zap.Int("total", result.TotalMessages),
		zap.Int("phishing", result.PhishingCount))
	return result
}

// RecordBatch appends every valid analysis of a batch result to the store.
// It stops at the first store failure so audit history never has silent
// holes in the middle of a batch.
func (s *GuardService) RecordBatch(ctx context.Context, result *BatchResult) error {
	for i := range result.Analyses {
		if result.Analyses[i].Invalid {
			continue
		}
		if _, err := s.store.Append(ctx, &result.Analyses[i]); err != nil {
			return fmt.Errorf("failed to record batch analysis %d: %w", i, err)
		}
	}
	return nil
}
