// Package score computes the heuristic bonus/penalty preview for a lead:
// ideal-customer-profile matching plus company-size adjustments.
package score

import (
	"fmt"
	"strings"

	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/rules"
)

// icpBonus is the fixed reward for matching any ICP definition.
const icpBonus = 50

// bonusCap limits the combined ICP and size bonuses. Penalties apply after
// the cap and are not limited by it.
const bonusCap = 50

// Preview estimates the scoring adjustment the consensus layer would apply.
// Pure: same inputs always produce the same preview.
func Preview(subIndustry, role, country, city, employeeCount string) lead.ScorePreview {
	name, matched := matchICP(subIndustry, role, country, city)

	bonus := 0
	if matched {
		bonus = icpBonus
	}

	sizeAdj, sizeReason := sizeAdjustment(strings.TrimSpace(employeeCount), city, country)

	total := bonus
	if sizeAdj > 0 {
		total += sizeAdj
	}
	if total > bonusCap {
		total = bonusCap
	}
	if sizeAdj < 0 {
		total += sizeAdj
	}

	var recs []string
	if !matched {
		recs = append(recs, "Consider targeting ICP categories for +50 bonus")
	}
	if sizeAdj < 0 {
		recs = append(recs, "Large companies receive penalties - consider smaller targets")
	}
	if sizeAdj == 0 && !matched {
		recs = append(recs, "Small companies (<=50 employees) receive +20 bonus")
	}

	return lead.ScorePreview{
		ICPMatch:            matched,
		ICPName:             name,
		ICPBonus:            bonus,
		SizeAdjustment:      sizeAdj,
		SizeReason:          sizeReason,
		EstimatedAdjustment: total,
		Recommendations:     recs,
	}
}

// matchICP returns the first matching ICP definition. Definition order is
// significant.
func matchICP(subIndustry, role, country, city string) (string, bool) {
	sub := strings.ToLower(strings.TrimSpace(subIndustry))
	roleLower := strings.ToLower(strings.TrimSpace(role))
	countryLower := strings.ToLower(strings.TrimSpace(country))
	cityLower := strings.ToLower(strings.TrimSpace(city))

	roleExpanded := expandRole(roleLower)

	for _, icp := range rules.ICPDefinitions {
		if !fuzzyContainsAny(sub, icp.SubIndustries) {
			continue
		}

		roleMatch := false
		for _, r := range icp.Roles {
			if strings.Contains(roleLower, r) || strings.Contains(roleExpanded, r) {
				roleMatch = true
				break
			}
		}
		if !roleMatch {
			continue
		}

		if len(icp.Regions) > 0 {
			regionMatch := false
			for _, region := range icp.Regions {
				if strings.Contains(countryLower, region) || strings.Contains(cityLower, region) {
					regionMatch = true
					break
				}
			}
			if !regionMatch {
				continue
			}
		}

		return icp.Name, true
	}
	return "", false
}

// expandRole appends the abbreviation for each spelled-out C-suite title so
// "chief technology officer" also matches ICP roles written as "cto".
// Containment matching makes repeats harmless.
func expandRole(roleLower string) string {
	expanded := roleLower
	for full, abbr := range rules.RoleExpansions {
		if strings.Contains(roleLower, full) {
			expanded += " " + abbr
		}
	}
	return expanded
}

// fuzzyContainsAny matches by equality or substring containment in either
// direction.
func fuzzyContainsAny(sub string, candidates []string) bool {
	for _, c := range candidates {
		if sub == c || strings.Contains(c, sub) || strings.Contains(sub, c) {
			return true
		}
	}
	return false
}

// IsMajorHub reports whether the city is a recognized major hub for the
// country. Country matching is fuzzy in both directions; city matching is
// exact against the hub set.
func IsMajorHub(city, country string) bool {
	cityLower := strings.ToLower(strings.TrimSpace(city))
	countryLower := strings.ToLower(strings.TrimSpace(country))

	for hubCountry, hubCities := range rules.MajorHubsByCountry {
		if strings.Contains(countryLower, hubCountry) || strings.Contains(hubCountry, countryLower) {
			if hubCities[cityLower] {
				return true
			}
		}
	}
	return false
}

// sizeAdjustment maps the employee bucket to a bonus or penalty.
func sizeAdjustment(employeeCount, city, country string) (int, string) {
	bounds, ok := rules.EmployeeCountRanges[employeeCount]
	if !ok {
		return 0, "no_employee_count"
	}
	empMin, empMax := bounds[0], bounds[1]

	if empMax <= 10 && IsMajorHub(city, country) {
		return 50, fmt.Sprintf("small_company_major_hub (<=10 employees in %s)", city)
	}
	if empMax <= 50 {
		return 20, "small_company (<=50 employees)"
	}
	if empMin > 5000 && empMin < 10001 {
		return -15, "large_company_penalty (5k-10k employees)"
	}
	if empMin > 1000 {
		return -10, "large_company_penalty (>1k employees)"
	}
	return 0, "mid_size_company"
}
