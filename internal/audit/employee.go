package audit

import (
	"fmt"
	"strings"

	"github.com/leadgate/lead-audit/internal/rules"
)

// ValidateEmployeeCount requires an exact match against the accepted
// headcount buckets.
func ValidateEmployeeCount(count string) []string {
	count = strings.TrimSpace(count)
	if count == "" {
		return []string{"employee_count_empty"}
	}

	for _, valid := range rules.ValidEmployeeCounts {
		if count == valid {
			return nil
		}
	}
	return []string{fmt.Sprintf("employee_count_invalid:%s (valid: %s)",
		count, strings.Join(rules.ValidEmployeeCounts, ", "))}
}
