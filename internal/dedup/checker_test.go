package dedup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadgate/lead-audit/internal/fingerprint"
	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/translog"
)

type fakeLog struct {
	decisions map[string]string // column+"/"+hash -> decision
	pending   map[string]bool
	since     []translog.Decision
	err       error
}

func (f *fakeLog) LatestDecision(_ context.Context, column, hash string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	d, ok := f.decisions[column+"/"+hash]
	return d, ok, nil
}

func (f *fakeLog) HasPendingSubmission(_ context.Context, emailHash string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.pending[emailHash], nil
}

func (f *fakeLog) DecisionsSince(_ context.Context, _ time.Time) ([]translog.Decision, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.since, nil
}

func tempCache(t *testing.T) *Cache {
	t.Helper()
	return OpenCache(filepath.Join(t.TempDir(), "duplicate_cache.json"))
}

func TestCheckOnlineEmailApproved(t *testing.T) {
	email := "jane@acme.com"
	log := &fakeLog{decisions: map[string]string{
		translog.ColumnEmailHash + "/" + fingerprint.EmailHash(email): "approve",
	}}

	c := NewChecker(ModeOnline, log, tempCache(t))
	st := c.Check(context.Background(), email, "", "")

	assert.True(t, st.IsDuplicate)
	assert.Equal(t, lead.DupEmailApproved, st.Reason)
	assert.False(t, st.CanResubmit)
	assert.Equal(t, lead.SourceOnline, st.Source)
}

func TestCheckOnlineEmailDenied(t *testing.T) {
	email := "jane@acme.com"
	log := &fakeLog{decisions: map[string]string{
		translog.ColumnEmailHash + "/" + fingerprint.EmailHash(email): "deny",
	}}

	c := NewChecker(ModeOnline, log, tempCache(t))
	st := c.Check(context.Background(), email, "", "")

	assert.False(t, st.IsDuplicate)
	assert.Equal(t, lead.DupEmailDenied, st.Reason)
	assert.True(t, st.CanResubmit)
}

func TestCheckOnlineLinkedInApproved(t *testing.T) {
	linkedin := "https://linkedin.com/in/janesmith"
	company := "https://linkedin.com/company/acme"
	log := &fakeLog{decisions: map[string]string{
		translog.ColumnLinkedInHash + "/" + fingerprint.LinkedInComboHash(linkedin, company): "approve",
	}}

	c := NewChecker(ModeOnline, log, tempCache(t))
	st := c.Check(context.Background(), "jane@acme.com", linkedin, company)

	assert.True(t, st.IsDuplicate)
	assert.Equal(t, lead.DupLinkedInApproved, st.Reason)
	assert.False(t, st.CanResubmit)
}

func TestCheckOnlinePendingSubmission(t *testing.T) {
	email := "jane@acme.com"
	log := &fakeLog{pending: map[string]bool{fingerprint.EmailHash(email): true}}

	c := NewChecker(ModeOnline, log, tempCache(t))
	st := c.Check(context.Background(), email, "", "")

	assert.True(t, st.IsDuplicate)
	assert.Equal(t, lead.DupEmailPending, st.Reason)
	assert.False(t, st.CanResubmit)
}

func TestCheckOnlineUnknownIsNew(t *testing.T) {
	c := NewChecker(ModeOnline, &fakeLog{}, tempCache(t))
	st := c.Check(context.Background(), "jane@acme.com", "", "")

	assert.False(t, st.IsDuplicate)
	assert.Equal(t, lead.DupNew, st.Reason)
	assert.True(t, st.CanResubmit)
	assert.Equal(t, lead.SourceOnline, st.Source)
}

func TestCheckOnlineFailureFallsBackToCache(t *testing.T) {
	email := "jane@acme.com"
	cache := tempCache(t)
	cache.Put(fingerprint.EmailHash(email), "", "approve", time.Now())

	c := NewChecker(ModeOnline, &fakeLog{err: errors.New("connection refused")}, cache)
	st := c.Check(context.Background(), email, "", "")

	assert.True(t, st.IsDuplicate)
	assert.Equal(t, lead.DupEmailApproved, st.Reason)
	assert.Equal(t, lead.SourceCache, st.Source)
}

func TestCheckOfflineDeniedAllowsResubmit(t *testing.T) {
	email := "jane@acme.com"
	cache := tempCache(t)
	cache.Put(fingerprint.EmailHash(email), "", "deny", time.Now())

	c := NewChecker(ModeOffline, nil, cache)
	st := c.Check(context.Background(), email, "", "")

	assert.False(t, st.IsDuplicate)
	assert.Equal(t, lead.DupEmailDenied, st.Reason)
	assert.True(t, st.CanResubmit)
	assert.Equal(t, lead.SourceCache, st.Source)
}

func TestCheckOfflineMissIsNew(t *testing.T) {
	c := NewChecker(ModeOffline, nil, tempCache(t))
	st := c.Check(context.Background(), "nobody@acme.com", "", "")

	assert.False(t, st.IsDuplicate)
	assert.Equal(t, lead.DupNew, st.Reason)
	assert.True(t, st.CanResubmit)
}

func TestSyncCachePersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duplicate_cache.json")
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	log := &fakeLog{since: []translog.Decision{
		{EmailHash: "hash1", LinkedInHash: "combo1", FinalDecision: "approve", CreatedAt: created},
		{EmailHash: "hash2", FinalDecision: "deny", CreatedAt: created},
		{LinkedInHash: "combo2", FinalDecision: "approve", CreatedAt: created},
	}}

	c := NewChecker(ModeOnline, log, OpenCache(path))
	count, err := c.SyncCache(context.Background(), created.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A fresh load sees the persisted decisions.
	reloaded := OpenCache(path)
	d, ok := reloaded.EmailDecision("hash1")
	require.True(t, ok)
	assert.Equal(t, "approve", d.Decision)
	_, ok = reloaded.LinkedInDecision("combo2")
	assert.True(t, ok)
	require.NotNil(t, reloaded.SyncedAt())
}

func TestOpenCacheCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duplicate_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := OpenCache(path)
	_, ok := c.EmailDecision("anything")
	assert.False(t, ok)
	assert.Nil(t, c.SyncedAt())
}
