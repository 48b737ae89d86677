package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadgate/lead-audit/internal/lead"
)

func TestValidateSourceProvenance(t *testing.T) {
	tests := []struct {
		name     string
		rec      lead.Record
		wantErrs []string
	}{
		{
			name: "clean company site source",
			rec: lead.Record{
				"source_url":  "https://acme.com/team",
				"source_type": "company_site",
			},
			wantErrs: []string{},
		},
		{
			name:     "missing both fields",
			rec:      lead.Record{},
			wantErrs: []string{"missing_field:source_url", "missing_field:source_type"},
		},
		{
			name: "restricted data broker",
			rec: lead.Record{
				"source_url":  "https://www.rocketreach.co/acme-profile",
				"source_type": "company_site",
			},
			wantErrs: []string{"restricted_source:rocketreach.co"},
		},
		{
			name: "two brokers report the denylist's first entry only",
			rec: lead.Record{
				"source_url":  "https://apollo.io/export?src=zoominfo.com",
				"source_type": "company_site",
			},
			wantErrs: []string{"restricted_source:zoominfo.com"},
		},
		{
			name: "unknown source type lists the valid enumeration",
			rec: lead.Record{
				"source_url":  "https://acme.com/team",
				"source_type": "web_scrape",
			},
			wantErrs: []string{
				"source_type_invalid:web_scrape (valid: public_registry, company_site, first_party_form, licensed_resale, proprietary_database)",
			},
		},
		{
			name: "licensed resale without license hash",
			rec: lead.Record{
				"source_url":  "https://dataprovider.example.com/catalog",
				"source_type": "licensed_resale",
			},
			wantErrs: []string{"missing_license_doc_hash (required for licensed_resale)"},
		},
		{
			name: "licensed resale with short hash",
			rec: lead.Record{
				"source_url":       "https://dataprovider.example.com/catalog",
				"source_type":      "licensed_resale",
				"license_doc_hash": "abc123",
			},
			wantErrs: []string{"license_doc_hash_invalid_format (must be 64 hex chars SHA-256)"},
		},
		{
			name: "licensed resale with non-hex hash",
			rec: lead.Record{
				"source_url":       "https://dataprovider.example.com/catalog",
				"source_type":      "licensed_resale",
				"license_doc_hash": strings.Repeat("g", 64),
			},
			wantErrs: []string{"license_doc_hash_invalid_format (must be 64 hex chars SHA-256)"},
		},
		{
			name: "licensed resale with valid hash",
			rec: lead.Record{
				"source_url":       "https://dataprovider.example.com/catalog",
				"source_type":      "licensed_resale",
				"license_doc_hash": strings.Repeat("Ab12", 16),
			},
			wantErrs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.wantErrs, ValidateSourceProvenance(tt.rec))
		})
	}
}
