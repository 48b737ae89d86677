// Package dedup resolves duplicate status for lead fingerprints against the
// transparency log, with a local file cache for offline use.
package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// CachedDecision is one consensus outcome stored locally.
type CachedDecision struct {
	Decision  string `json:"decision"`
	Timestamp string `json:"timestamp"`
}

// cacheData is the on-disk shape of the offline cache.
type cacheData struct {
	EmailHashes    map[string]CachedDecision `json:"email_hashes"`
	LinkedInHashes map[string]CachedDecision `json:"linkedin_hashes"`
	SyncedAt       *time.Time                `json:"synced_at"`
}

// Cache is the offline duplicate-decision store, persisted as JSON at a fixed
// per-user path. An unreadable or corrupt file degrades to an empty cache.
type Cache struct {
	path string
	data cacheData
}

// DefaultCachePath returns ~/.lead-audit/duplicate_cache.json.
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".lead-audit", "duplicate_cache.json")
	}
	return filepath.Join(home, ".lead-audit", "duplicate_cache.json")
}

// OpenCache loads the cache at path, or an empty one when the file is absent
// or unreadable.
func OpenCache(path string) *Cache {
	c := &Cache{path: path, data: emptyData()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("duplicate cache unreadable", zap.String("path", path), zap.Error(err))
		}
		return c
	}

	var data cacheData
	if err := json.Unmarshal(raw, &data); err != nil {
		zap.L().Warn("duplicate cache corrupt, starting empty", zap.String("path", path), zap.Error(err))
		return c
	}
	if data.EmailHashes == nil {
		data.EmailHashes = map[string]CachedDecision{}
	}
	if data.LinkedInHashes == nil {
		data.LinkedInHashes = map[string]CachedDecision{}
	}
	c.data = data
	return c
}

func emptyData() cacheData {
	return cacheData{
		EmailHashes:    map[string]CachedDecision{},
		LinkedInHashes: map[string]CachedDecision{},
	}
}

// EmailDecision returns the cached decision for an email hash.
func (c *Cache) EmailDecision(hash string) (CachedDecision, bool) {
	d, ok := c.data.EmailHashes[hash]
	return d, ok
}

// LinkedInDecision returns the cached decision for a LinkedIn combo hash.
func (c *Cache) LinkedInDecision(hash string) (CachedDecision, bool) {
	d, ok := c.data.LinkedInHashes[hash]
	return d, ok
}

// SyncedAt returns when the cache was last refreshed, or nil if never.
func (c *Cache) SyncedAt() *time.Time {
	return c.data.SyncedAt
}

// Put records a decision under the given hashes. Either hash may be empty.
func (c *Cache) Put(emailHash, linkedinHash, decision string, timestamp time.Time) {
	entry := CachedDecision{Decision: decision, Timestamp: timestamp.UTC().Format(time.RFC3339)}
	if emailHash != "" {
		c.data.EmailHashes[emailHash] = entry
	}
	if linkedinHash != "" {
		c.data.LinkedInHashes[linkedinHash] = entry
	}
}

// MarkSynced stamps the cache with the given sync time.
func (c *Cache) MarkSynced(at time.Time) {
	at = at.UTC()
	c.data.SyncedAt = &at
}

// Save writes the cache atomically: a temp file in the same directory is
// renamed over the target so readers never observe a partial file.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return eris.Wrap(err, "dedup: create cache dir")
	}

	raw, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return eris.Wrap(err, "dedup: marshal cache")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".duplicate_cache-*.json")
	if err != nil {
		return eris.Wrap(err, "dedup: create temp cache")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return eris.Wrap(err, "dedup: write temp cache")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "dedup: close temp cache")
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "dedup: replace cache")
	}
	return nil
}
