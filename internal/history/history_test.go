package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadgate/lead-audit/internal/lead"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndReadRun(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	results := []lead.AuditResult{
		{Passed: true, BlockingErrors: []string{}, Warnings: []string{}},
		{Passed: false, BlockingErrors: []string{"email_empty"}, Warnings: []string{}},
	}
	emails := []string{"jane@acme.com", ""}

	run, err := s.RecordRun(ctx, "online", emails, results)
	require.NoError(t, err)
	assert.Equal(t, 2, run.Leads)
	assert.Equal(t, 1, run.Passed)
	assert.Equal(t, 1, run.Failed)

	runs, err := s.RecentRuns(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "online", runs[0].Mode)

	stored, err := s.RunResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "jane@acme.com", stored[0].Email)
	assert.True(t, stored[0].Result.Passed)
	assert.Equal(t, []string{"email_empty"}, stored[1].Result.BlockingErrors)
}

func TestRecordRunMismatchedInput(t *testing.T) {
	s := openStore(t)
	_, err := s.RecordRun(context.Background(), "offline", []string{"a@b.com"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 emails for 0 results")
}

func TestRecentRunsLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for range 3 {
		_, err := s.RecordRun(ctx, "offline", []string{"a@b.com"}, []lead.AuditResult{{Passed: true}})
		require.NoError(t, err)
	}

	runs, err := s.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunResultsEmptyRun(t *testing.T) {
	s := openStore(t)
	results, err := s.RunResults(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, results)
}
