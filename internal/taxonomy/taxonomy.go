// Package taxonomy resolves the external industry→sub-industry mapping used
// by the industry-pair validator.
package taxonomy

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// entry is the on-disk shape: each sub-industry key carries its valid
// industries.
type entry struct {
	Industries []string `yaml:"industries"`
}

// Resolver loads the taxonomy once per process lifetime and serves
// industry-pair validation. An unloadable source is a degraded, non-fatal
// condition surfaced as a single taxonomy_not_loaded violation.
type Resolver struct {
	path string

	once     sync.Once
	taxonomy map[string][]string
}

// NewResolver creates a Resolver reading from the given YAML file. Nothing is
// loaded until first use.
func NewResolver(path string) *Resolver {
	return &Resolver{path: path}
}

// Mapping returns the sub-industry→industries table, lower-cased on both
// sides, loading it on first call. Returns nil when the source is
// unavailable.
func (r *Resolver) Mapping() map[string][]string {
	r.once.Do(func() {
		raw, err := os.ReadFile(r.path)
		if err != nil {
			zap.L().Warn("taxonomy unavailable", zap.String("path", r.path), zap.Error(err))
			return
		}

		var parsed map[string]entry
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			zap.L().Warn("taxonomy unparseable", zap.String("path", r.path), zap.Error(err))
			return
		}

		taxonomy := make(map[string][]string, len(parsed))
		for sub, e := range parsed {
			industries := make([]string, 0, len(e.Industries))
			for _, ind := range e.Industries {
				industries = append(industries, strings.ToLower(ind))
			}
			taxonomy[strings.ToLower(sub)] = industries
		}
		r.taxonomy = taxonomy
		zap.L().Debug("taxonomy loaded", zap.Int("sub_industries", len(taxonomy)))
	})
	return r.taxonomy
}

// ValidatePair checks that sub-industry is a known taxonomy key and industry
// is valid for it.
func (r *Resolver) ValidatePair(industry, subIndustry string) []string {
	taxonomy := r.Mapping()
	if len(taxonomy) == 0 {
		return []string{"taxonomy_not_loaded"}
	}

	var errs []string
	sub := strings.ToLower(strings.TrimSpace(subIndustry))
	ind := strings.ToLower(strings.TrimSpace(industry))

	if sub == "" {
		return append(errs, "sub_industry_empty")
	}

	valid, ok := taxonomy[sub]
	if !ok {
		return append(errs, "sub_industry_invalid:"+subIndustry)
	}

	if ind == "" {
		return append(errs, "industry_empty")
	}

	for _, v := range valid {
		if ind == v {
			return errs
		}
	}
	return append(errs, fmt.Sprintf("industry_mismatch:%s not valid for %s (valid: %s)",
		industry, subIndustry, strings.Join(valid, ", ")))
}
