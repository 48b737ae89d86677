package audit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leadgate/lead-audit/internal/rules"
)

const (
	roleMaxLength        = 80
	roleKeywordThreshold = 60
	roleVowelRatioMin    = 0.1
)

var (
	lettersRe         = regexp.MustCompile(`[a-zA-Z]`)
	urlRe             = regexp.MustCompile(`https?://|www\.`)
	emailInTextRe     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe           = regexp.MustCompile(`\+?[0-9\s()\-]{10,}`)
	nonLatinRe        = regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{ac00}-\x{d7af}\x{0600}-\x{06ff}\x{0e00}-\x{0e7f}\x{0400}-\x{04ff}\x{0590}-\x{05ff}]`)
	wordRe            = regexp.MustCompile(`\w+`)
	achievementRe     = regexp.MustCompile(`^\d+[xX]\s`)
	dollarAmountRe    = regexp.MustCompile(`\$\d+[MmKkBb]?\+?`)
	trailingOfRe      = regexp.MustCompile(`\bof\s*$`)
	companyAtRe       = regexp.MustCompile(`\s(?:at|@)\s+[A-Z]`)
	legalSuffixRe     = regexp.MustCompile(`\b(?:inc\.|llc|ltd\.|corp\.)\b`)
	emojiRe           = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{1F1E0}-\x{1F1FF}\x{2705}\x{274C}\x{2714}]`)
	hiringStarsRe     = regexp.MustCompile(`\*{2,}hiring\*{2,}`)
	bioOpenerRe       = regexp.MustCompile(`^(?:i am|i'm|we are|we're|helping|passionate|dedicated|committed|driven)\s`)
	sentenceBreakRe   = regexp.MustCompile(`\.\s*[A-Z]`)
	roleSpecialLeader = `!@#$%^&*()_+-=[]{}|;:'",.<>?/` + "\\`~"
)

// ValidateRole applies every role check independently and returns all fired
// codes, not just the first. The anti-gaming checks at the end mirror the
// consensus layer's role-format stage.
func ValidateRole(role string) []string {
	if role == "" {
		return []string{"role_empty"}
	}

	role = strings.TrimSpace(role)
	lower := strings.ToLower(role)
	length := utf8.RuneCountInString(role)

	var errs []string

	// 1. Length bounds.
	if length < 2 {
		errs = append(errs, "role_too_short")
	}
	if length > roleMaxLength {
		errs = append(errs, fmt.Sprintf("role_too_long:%d/%d", length, roleMaxLength))
	}

	// 2. Must contain letters.
	if !lettersRe.MatchString(role) {
		errs = append(errs, "role_no_letters")
	}

	// 3. Cannot be mostly digits.
	digits := 0
	for _, r := range role {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if length > 0 && float64(digits)/float64(length) > 0.5 {
		errs = append(errs, "role_mostly_numbers")
	}

	// 4. Placeholder strings.
	for _, p := range rules.RolePlaceholders {
		if lower == p {
			errs = append(errs, "role_placeholder")
			break
		}
	}

	// 5. Four or more identical characters in a row.
	if hasRepeatedRun(role, 4) {
		errs = append(errs, "role_repeated_chars")
	}

	// 6. Any word repeated three or more times.
	if hasWordRepeated(lower, 3) {
		errs = append(errs, "role_repeated_words")
	}

	// 7. Scam phrases.
	for _, pattern := range rules.RoleScamPatterns {
		if strings.Contains(lower, pattern) {
			errs = append(errs, "role_scam_pattern:"+pattern)
			break
		}
	}

	// 8. URLs.
	if urlRe.MatchString(role) {
		errs = append(errs, "role_contains_url")
	}

	// 9. Email addresses.
	if emailInTextRe.MatchString(role) {
		errs = append(errs, "role_contains_email")
	}

	// 10. Phone numbers.
	if phoneRe.MatchString(role) {
		errs = append(errs, "role_contains_phone")
	}

	// 11. Non-Latin scripts (CJK, Kana, Hangul, Arabic, Thai, Cyrillic, Hebrew).
	if nonLatinRe.MatchString(role) {
		errs = append(errs, "role_non_english")
	}

	// 12. Website TLD fragments.
	for _, tld := range rules.RoleURLTLDs {
		if strings.Contains(lower, "."+tld) {
			errs = append(errs, "role_contains_website")
			break
		}
	}

	// 13. Known misspellings, whole words only: "manger" fires, "mangerial"
	// must not.
	words := make(map[string]bool)
	for _, w := range wordRe.FindAllString(lower, -1) {
		words[w] = true
	}
	for _, canonical := range typoCanonicalOrder {
		for _, typo := range rules.RoleTypos[canonical] {
			if words[typo] {
				errs = append(errs, fmt.Sprintf("role_typo:%s->%s", typo, canonical))
				break
			}
		}
	}

	// 14. Minimum alphabetic characters.
	letters := 0
	vowels := 0
	for _, r := range role {
		if unicode.IsLetter(r) {
			letters++
		}
		if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
			vowels++
		}
	}
	if letters < 3 {
		errs = append(errs, "role_too_few_letters")
	}

	// 15. Leading punctuation.
	if first, _ := utf8.DecodeRuneInString(role); strings.ContainsRune(roleSpecialLeader, first) {
		errs = append(errs, "role_starts_special_char")
	}

	// 16. Achievement statements ("10x ", "$5M+").
	if achievementRe.MatchString(role) || dollarAmountRe.MatchString(role) {
		errs = append(errs, "role_achievement_statement")
	}

	// 17. Incomplete title ending in "of".
	if trailingOfRe.MatchString(lower) {
		errs = append(errs, "role_incomplete_title")
	}

	// 18. Embedded company names or legal suffixes.
	if companyAtRe.MatchString(role) || legalSuffixRe.MatchString(lower) {
		errs = append(errs, "role_contains_company")
	}

	// 19. Emoji.
	if emojiRe.MatchString(role) {
		errs = append(errs, "role_contains_emoji")
	}

	// 20. Hiring announcements.
	if hiringStarsRe.MatchString(lower) || strings.Contains(lower, "we're hiring") || strings.Contains(lower, "now hiring") {
		errs = append(errs, "role_hiring_marker")
	}

	// 21. First-person bio openers.
	if bioOpenerRe.MatchString(lower) {
		errs = append(errs, "role_bio_description")
	}

	// 22. Long roles must contain a recognized job-title keyword.
	if length > roleKeywordThreshold && !containsAnyKeyword(lower, rules.RoleJobKeywords) {
		errs = append(errs, "role_no_job_keywords")
	}

	// 23. Gibberish: too few vowels among the letters.
	if letters > 5 && float64(vowels)/float64(letters) < roleVowelRatioMin {
		errs = append(errs, "role_gibberish")
	}

	// 24. Geographic suffixes used to fake per-region roles.
	for _, ending := range rules.RoleGeographicEndings {
		if strings.HasSuffix(lower, ending) {
			errs = append(errs, "role_geographic_ending:"+ending)
			break
		}
	}

	// 25. Tagline sentences: a period followed by a capital letter.
	if sentenceBreakRe.MatchString(role) {
		errs = append(errs, "role_marketing_sentence")
	}

	// 26. More than one C-suite title at once.
	var csuite []string
	for _, title := range rules.RoleCSuiteTitles {
		if strings.Contains(lower, title) {
			csuite = append(csuite, title)
		}
	}
	if len(csuite) > 1 {
		errs = append(errs, "role_multiple_csuite:"+strings.Join(csuite, ","))
	}

	// 27. Comma-separated role stuffing.
	if strings.Contains(role, ",") {
		keywordParts := 0
		for _, part := range strings.Split(lower, ",") {
			if containsAnyKeyword(strings.TrimSpace(part), rules.RoleJobKeywords) {
				keywordParts++
			}
		}
		if keywordParts >= 3 {
			errs = append(errs, "role_comma_stuffing")
		}
	}

	// 28. Pipe-separated role stuffing: every segment is a job title.
	if strings.Contains(role, "|") {
		parts := strings.Split(lower, "|")
		if len(parts) >= 2 {
			all := true
			for _, part := range parts {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if !containsAnyKeyword(part, rules.RoleJobKeywords) {
					all = false
					break
				}
			}
			if all {
				errs = append(errs, "role_pipe_stuffing")
			}
		}
	}

	return errs
}

// typoCanonicalOrder fixes the reporting order of the typo dictionary, which
// is a map.
var typoCanonicalOrder = sortedTypoKeys()

func sortedTypoKeys() []string {
	keys := make([]string, 0, len(rules.RoleTypos))
	for k := range rules.RoleTypos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hasRepeatedRun reports a run of n or more identical runes.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// hasWordRepeated reports any whitespace-delimited word occurring n or more
// times.
func hasWordRepeated(lower string, n int) bool {
	counts := make(map[string]int)
	for _, w := range strings.Fields(lower) {
		counts[w]++
		if counts[w] >= n {
			return true
		}
	}
	return false
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
