package translog

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestDecision_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs("abc123", EventConsensusResult).
		WillReturnRows(pgxmock.NewRows([]string{"final_decision"}).AddRow("approve"))

	c := NewClient(mock)
	decision, found, err := c.LatestDecision(context.Background(), ColumnEmailHash, "abc123")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "approve", decision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestDecision_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs("abc123", EventConsensusResult).
		WillReturnRows(pgxmock.NewRows([]string{"final_decision"}))

	c := NewClient(mock)
	_, found, err := c.LatestDecision(context.Background(), ColumnLinkedInHash, "abc123")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestDecision_RejectsUnknownColumn(t *testing.T) {
	c := NewClient(nil)
	_, _, err := c.LatestDecision(context.Background(), "payload", "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported filter column")
}

func TestHasPendingSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("abc123", EventSubmission).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	c := NewClient(mock)
	pending, err := c.HasPendingSubmission(context.Background(), "abc123")
	assert.NoError(t, err)
	assert.True(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created := since.Add(26 * time.Hour)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(EventConsensusResult, since).
		WillReturnRows(pgxmock.NewRows([]string{"email_hash", "linkedin_combo_hash", "final_decision", "created_at"}).
			AddRow("hash1", "combo1", "approve", created).
			AddRow("hash2", "", "deny", created))

	c := NewClient(mock)
	decisions, err := c.DecisionsSince(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, "hash1", decisions[0].EmailHash)
	assert.Equal(t, "combo1", decisions[0].LinkedInHash)
	assert.Equal(t, "approve", decisions[0].FinalDecision)
	assert.Equal(t, "deny", decisions[1].FinalDecision)
	assert.NoError(t, mock.ExpectationsWereMet())
}
