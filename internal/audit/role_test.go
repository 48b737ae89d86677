package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRole(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		wantCodes   []string
		rejectCodes []string
	}{
		{
			name:      "clean title",
			role:      "VP of Engineering",
			wantCodes: nil,
		},
		{
			name:      "empty",
			role:      "",
			wantCodes: []string{"role_empty"},
		},
		{
			name:        "whitespace only is not empty",
			role:        "   ",
			wantCodes:   []string{"role_too_short", "role_no_letters", "role_too_few_letters"},
			rejectCodes: []string{"role_empty"},
		},
		{
			name:      "typo as whole word",
			role:      "Sales Manger",
			wantCodes: []string{"role_typo:manger->manager"},
		},
		{
			name:        "typo substring inside longer word does not fire",
			role:        "Mangerial Consultant",
			rejectCodes: []string{"role_typo:manger->manager"},
		},
		{
			name:      "multiple c-suite titles",
			role:      "CEO, CFO",
			wantCodes: []string{"role_multiple_csuite:ceo,cfo"},
		},
		{
			name:      "pipe stuffing",
			role:      "CEO | Founder",
			wantCodes: []string{"role_pipe_stuffing"},
		},
		{
			name:      "comma stuffing",
			role:      "Founder, Advisor, Consultant, Investor",
			wantCodes: []string{"role_comma_stuffing"},
		},
		{
			name:      "scam phrase",
			role:      "Crypto Trader",
			wantCodes: []string{"role_scam_pattern:crypto trader"},
		},
		{
			name:      "url and tld fragment",
			role:      "Visit www.example.com",
			wantCodes: []string{"role_contains_url", "role_contains_website"},
		},
		{
			name:      "embedded email",
			role:      "CEO john@acme.com",
			wantCodes: []string{"role_contains_email"},
		},
		{
			name:      "incomplete title",
			role:      "Head of",
			wantCodes: []string{"role_incomplete_title"},
		},
		{
			name:      "company name attached",
			role:      "CEO at Acme",
			wantCodes: []string{"role_contains_company"},
		},
		{
			name:      "geographic ending",
			role:      "Regional Manager - APAC",
			wantCodes: []string{"role_geographic_ending:- apac"},
		},
		{
			name:      "achievement opener",
			role:      "10x Founder",
			wantCodes: []string{"role_achievement_statement"},
		},
		{
			name:      "leading punctuation and no letters",
			role:      "!!!",
			wantCodes: []string{"role_no_letters", "role_too_few_letters", "role_starts_special_char"},
		},
		{
			name:      "repeated characters",
			role:      "CEOoooo",
			wantCodes: []string{"role_repeated_chars"},
		},
		{
			name:      "repeated words",
			role:      "sales sales sales",
			wantCodes: []string{"role_repeated_words"},
		},
		{
			name:      "placeholder",
			role:      "asdf",
			wantCodes: []string{"role_placeholder"},
		},
		{
			name:      "too long",
			role:      strings.Repeat("Senior Manager ", 7),
			wantCodes: []string{"role_too_long:104/80"},
		},
		{
			name:      "embedded phone number",
			role:      "Sales Director +1 (555) 123-4567",
			wantCodes: []string{"role_contains_phone"},
		},
		{
			name:      "mostly digits",
			role:      "12345 67890",
			wantCodes: []string{"role_mostly_numbers", "role_no_letters"},
		},
		{
			name:      "non latin script",
			role:      "Директор по продажам",
			wantCodes: []string{"role_non_english"},
		},
		{
			name:      "emoji",
			role:      "CEO 🚀",
			wantCodes: []string{"role_contains_emoji"},
		},
		{
			name:      "gibberish consonant string",
			role:      "Xxqzwrtplkjhgfd",
			wantCodes: []string{"role_gibberish"},
		},
		{
			name:      "hiring announcement",
			role:      "**Hiring** Sales Team",
			wantCodes: []string{"role_hiring_marker"},
		},
		{
			name:      "bio opener",
			role:      "Passionate about building teams",
			wantCodes: []string{"role_bio_description"},
		},
		{
			name:      "marketing sentences",
			role:      "We build rockets. Ask me how",
			wantCodes: []string{"role_marketing_sentence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRole(tt.role)
			for _, code := range tt.wantCodes {
				assert.Contains(t, got, code)
			}
			for _, code := range tt.rejectCodes {
				assert.NotContains(t, got, code)
			}
			if tt.wantCodes == nil && tt.rejectCodes == nil {
				assert.Empty(t, got)
			}
		})
	}
}

func TestValidateRoleDeterministicOrder(t *testing.T) {
	role := "Sales Manger and Marketting Lead"
	first := ValidateRole(role)
	for range 10 {
		assert.Equal(t, first, ValidateRole(role))
	}
}
