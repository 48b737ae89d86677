package audit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	descShortThreshold = 70
	descMaxLength      = 2000
	descMinLetters     = 50
	descVowelRatioMin  = 0.15
)

var (
	followerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+\s*followers?\s*(?:on\s*)?linkedin`),
		regexp.MustCompile(`\d+\s*seguidores`), // Spanish
		regexp.MustCompile(`\d+\s*abonnés`),    // French
	}
	navPatterns = []string{
		"report this company", "close menu", "skip to main", "cookie policy",
		"accept cookies", "privacy settings",
	}
	descPlaceholders = []string{
		"lorem ipsum", "n/a", "placeholder", "test description", "tbd", "coming soon",
	}
	cjkRe     = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
	arabicRe  = regexp.MustCompile(`[\x{0600}-\x{06ff}]`)
	thaiRe    = regexp.MustCompile(`[\x{0e00}-\x{0e7f}]`)
	bareURLRe = regexp.MustCompile(`^https?://\S+$`)
)

// ValidateDescription applies the description checks. A short description is
// a quality warning rather than a blocking error; everything else blocks.
func ValidateDescription(description string) (errs, warnings []string) {
	if description == "" {
		return []string{"description_empty"}, nil
	}

	description = strings.TrimSpace(description)
	lower := strings.ToLower(description)
	length := utf8.RuneCountInString(description)

	if length < descShortThreshold {
		warnings = append(warnings, fmt.Sprintf("desc_short:%d/%d (quality warning)", length, descShortThreshold))
	}
	if length > descMaxLength {
		errs = append(errs, "desc_too_long")
	}

	if !lettersRe.MatchString(description) {
		errs = append(errs, "desc_no_letters")
	}

	letters := 0
	vowels := 0
	for _, r := range description {
		if unicode.IsLetter(r) {
			letters++
		}
		if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
			vowels++
		}
	}
	if letters < descMinLetters {
		errs = append(errs, fmt.Sprintf("desc_too_few_letters:%d/%d", letters, descMinLetters))
	}

	if strings.HasSuffix(strings.TrimRight(description, " \t\n"), "...") {
		errs = append(errs, "desc_truncated")
	}

	// Scraped LinkedIn follower counts, in several languages.
	for _, re := range followerPatterns {
		if re.MatchString(lower) {
			errs = append(errs, "desc_linkedin_followers")
			break
		}
	}

	// Navigation and cookie-banner boilerplate.
	for _, pattern := range navPatterns {
		if strings.Contains(lower, pattern) {
			errs = append(errs, "desc_navigation_text")
			break
		}
	}

	// Mixed scripts in short text are a scraping artifact, not a real bio.
	hasLatin := lettersRe.MatchString(description)
	if cjkRe.MatchString(description) && hasLatin && length < 200 {
		errs = append(errs, "desc_garbled_unicode")
	}
	if arabicRe.MatchString(description) && hasLatin && length < 200 {
		errs = append(errs, "desc_arabic_mixed")
	}
	if thaiRe.MatchString(description) && hasLatin && length < 200 {
		errs = append(errs, "desc_thai_mixed")
	}

	if letters > 30 && float64(vowels)/float64(letters) < descVowelRatioMin {
		errs = append(errs, "desc_gibberish")
	}

	for _, p := range descPlaceholders {
		if strings.Contains(lower, p) {
			errs = append(errs, "desc_placeholder")
			break
		}
	}

	if hasRepeatedRun(description, 5) {
		errs = append(errs, "desc_repeated_chars")
	}

	if bareURLRe.MatchString(description) {
		errs = append(errs, "desc_just_url")
	}

	if m := emailInTextRe.FindString(description); m != "" &&
		float64(utf8.RuneCountInString(m))/float64(length) > 0.3 {
		errs = append(errs, "desc_mostly_email")
	}

	if strings.HasPrefix(description, "|") {
		errs = append(errs, "desc_formatting_junk")
	}

	return errs, warnings
}
