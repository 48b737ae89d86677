package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewICPBonus(t *testing.T) {
	tests := []struct {
		name        string
		subIndustry string
		role        string
		country     string
		city        string
		wantMatch   bool
		wantName    string
	}{
		{"fintech risk officer", "fintech", "Chief Risk Officer", "Germany", "Berlin", true, "FinTech/Banking Risk & Compliance"},
		{"ml cto", "machine learning", "CTO", "", "", true, "AI/ML Technical"},
		{"expanded c-suite title", "machine learning", "Chief Technology Officer", "", "", true, "AI/ML Technical"},
		{"region gated icp outside region", "hotel", "general manager", "Germany", "Berlin", false, ""},
		{"region gated icp inside region", "hotel", "general manager", "United States", "Austin", true, "Hospitality/Hotels (US)"},
		{"no role overlap", "fintech", "Janitor", "", "", false, ""},
		{"unknown sub industry", "basket weaving", "CEO", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Preview(tt.subIndustry, tt.role, tt.country, tt.city, "")
			assert.Equal(t, tt.wantMatch, p.ICPMatch)
			assert.Equal(t, tt.wantName, p.ICPName)
			if tt.wantMatch {
				assert.Equal(t, 50, p.ICPBonus)
			} else {
				assert.Equal(t, 0, p.ICPBonus)
			}
		})
	}
}

func TestPreviewMidSizeICPMatch(t *testing.T) {
	p := Preview("machine learning", "CTO", "Germany", "Dresden", "51-200")

	assert.True(t, p.ICPMatch)
	assert.Equal(t, "AI/ML Technical", p.ICPName)
	assert.Equal(t, 50, p.ICPBonus)
	assert.Equal(t, 0, p.SizeAdjustment)
	assert.Equal(t, "mid_size_company", p.SizeReason)
	assert.Equal(t, 50, p.EstimatedAdjustment)
	assert.Empty(t, p.Recommendations)
}

func TestPreviewBonusCap(t *testing.T) {
	// ICP match plus small company in a hub would sum to 100 uncapped.
	p := Preview("machine learning", "CTO", "United States", "San Francisco", "2-10")

	assert.Equal(t, 50, p.ICPBonus)
	assert.Equal(t, 50, p.SizeAdjustment)
	assert.Equal(t, "small_company_major_hub (<=10 employees in San Francisco)", p.SizeReason)
	assert.Equal(t, 50, p.EstimatedAdjustment)
}

func TestPreviewLargeCompanyPenalty(t *testing.T) {
	p := Preview("", "", "Germany", "Dresden", "10,001+")

	assert.False(t, p.ICPMatch)
	assert.Equal(t, -10, p.SizeAdjustment)
	assert.Equal(t, -10, p.EstimatedAdjustment)
	assert.Contains(t, p.Recommendations, "Large companies receive penalties - consider smaller targets")
}

func TestPreviewVeryLargeCompanyPenalty(t *testing.T) {
	p := Preview("machine learning", "CTO", "", "", "5,001-10,000")

	// Penalty is applied after the cap, so a matched ICP still nets 35.
	assert.Equal(t, -15, p.SizeAdjustment)
	assert.Equal(t, 35, p.EstimatedAdjustment)
}

func TestPreviewSmallCompanyBonus(t *testing.T) {
	p := Preview("", "", "Germany", "Dresden", "11-50")

	assert.Equal(t, 20, p.SizeAdjustment)
	assert.Equal(t, "small_company (<=50 employees)", p.SizeReason)
	assert.Equal(t, 20, p.EstimatedAdjustment)
}

func TestPreviewNoEmployeeCount(t *testing.T) {
	p := Preview("", "", "", "", "")

	assert.Equal(t, 0, p.SizeAdjustment)
	assert.Equal(t, "no_employee_count", p.SizeReason)
	assert.Contains(t, p.Recommendations, "Consider targeting ICP categories for +50 bonus")
	assert.Contains(t, p.Recommendations, "Small companies (<=50 employees) receive +20 bonus")
}

func TestIsMajorHub(t *testing.T) {
	assert.True(t, IsMajorHub("San Francisco", "United States"))
	assert.True(t, IsMajorHub("  berlin ", "germany"))
	assert.False(t, IsMajorHub("Dresden", "Germany"))
	assert.False(t, IsMajorHub("", "Germany"))
}
