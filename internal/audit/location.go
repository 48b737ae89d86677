package audit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leadgate/lead-audit/internal/rules"
)

// ValidateLocation applies the anti-gaming checks to city, country, and
// region. Empty values are skipped; presence is the required-fields stage's
// concern.
func ValidateLocation(city, country, region string) []string {
	var errs []string

	fields := []struct {
		value string
		name  string
	}{
		{city, "city"},
		{country, "country"},
		{region, "region"},
	}

	for _, f := range fields {
		loc := strings.TrimSpace(f.value)
		if loc == "" {
			continue
		}
		lower := strings.ToLower(loc)

		if n := utf8.RuneCountInString(loc); n > rules.LocationMaxLength {
			errs = append(errs, fmt.Sprintf("%s_too_long:%d/%d", f.name, n, rules.LocationMaxLength))
		}

		for _, pattern := range rules.LocationGarbagePatterns {
			if strings.Contains(lower, pattern) {
				errs = append(errs, fmt.Sprintf("%s_garbage_pattern:%s", f.name, pattern))
				break
			}
		}

		// Duplicated company-style names, e.g. "Modotech Modotech".
		if word := repeatedWord(lower, 3, 2); word != "" {
			errs = append(errs, fmt.Sprintf("%s_duplicate_word:%s", f.name, word))
		}

		if strings.HasPrefix(lower, "the ") || strings.HasPrefix(lower, "a ") || strings.HasPrefix(lower, "an ") {
			errs = append(errs, f.name+"_starts_with_article")
		}
	}

	return errs
}

// repeatedWord returns the first word longer than minLen that appears at
// least minCount times, or "".
func repeatedWord(lower string, minLen, minCount int) string {
	words := strings.Fields(lower)
	if len(words) < 2 {
		return ""
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) > minLen && counts[w] >= minCount {
			return w
		}
	}
	return ""
}
