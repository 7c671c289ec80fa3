package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/phishguard/phishguard/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSQLiteStore_UnopenablePath(t *testing.T) {
	// Parent directory does not exist, so bootstrap fails
	_, err := NewSQLiteStore(filepath.Join(t.TempDir(), "missing", "threats.db"), zap.NewNop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSQLiteStore_AppendAndQueryWindow(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "threats.db"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	var last int64
	for i := 0; i < 3; i++ {
		id, err := s.Append(ctx, phishingAnalysis(core.ReasonSuspiciousLinks))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
	_, err = s.Append(ctx, &core.Analysis{ThreatLevel: core.ThreatLow, Reasons: []string{}})
	require.NoError(t, err)

	counts, err := s.QueryWindow(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 3, counts.Phishing)
	assert.Equal(t, 3, counts.HighRisk)

	patterns, err := s.TopReasonSets(ctx, 10)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []string{core.ReasonSuspiciousLinks}, patterns[0].Reasons)
	assert.Equal(t, 3, patterns[0].Count)
}
