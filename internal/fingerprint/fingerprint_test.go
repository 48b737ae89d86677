package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLinkedInURL_Profile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.linkedin.com/in/jane-doe", "linkedin.com/in/jane-doe"},
		{"http://linkedin.com/in/jane-doe/", "linkedin.com/in/jane-doe"},
		{"linkedin.com/in/Jane-Doe?trk=public", "linkedin.com/in/jane-doe"},
		{"https://linkedin.com//in//jane-doe#about", "linkedin.com/in/jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/details/experience", "linkedin.com/in/jane-doe"},
		{"https://twitter.com/janedoe", ""},
		{"https://www.linkedin.com/company/acme", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLinkedInURL(tt.in, ProfileURL))
		})
	}
}

func TestNormalizeLinkedInURL_Company(t *testing.T) {
	assert.Equal(t, "linkedin.com/company/acme", NormalizeLinkedInURL("https://www.linkedin.com/company/Acme/", CompanyURL))
	assert.Equal(t, "", NormalizeLinkedInURL("https://www.linkedin.com/in/jane-doe", CompanyURL))
}

func TestNormalizeLinkedInURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.linkedin.com/in/jane-doe",
		"linkedin.com/in/jane-doe/",
		"https://linkedin.com/in/jane-doe?x=1",
		"not a url",
		"https://example.com/in/jane",
	}
	for _, in := range inputs {
		once := NormalizeLinkedInURL(in, ProfileURL)
		assert.Equal(t, once, NormalizeLinkedInURL(once, ProfileURL), "input %q", in)
	}
}

func TestEmailHash(t *testing.T) {
	// Case and surrounding whitespace must not change the fingerprint.
	assert.Equal(t, EmailHash("Jane.Doe@Acme.com"), EmailHash("  jane.doe@acme.com "))
	assert.Len(t, EmailHash("jane@acme.com"), 64)
	assert.NotEqual(t, EmailHash("jane@acme.com"), EmailHash("john@acme.com"))
}

func TestLinkedInComboHash(t *testing.T) {
	h := LinkedInComboHash("https://www.linkedin.com/in/jane-doe", "https://linkedin.com/company/acme")
	assert.Len(t, h, 64)

	// Already-canonical inputs hash identically.
	assert.Equal(t, h, LinkedInComboHash("linkedin.com/in/jane-doe", "linkedin.com/company/acme"))

	// Either URL failing canonicalization yields no fingerprint.
	assert.Empty(t, LinkedInComboHash("", "linkedin.com/company/acme"))
	assert.Empty(t, LinkedInComboHash("linkedin.com/in/jane-doe", "https://example.com"))
}
