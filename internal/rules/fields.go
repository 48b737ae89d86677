package rules

// RequiredFields must all be present and non-blank on every lead.
var RequiredFields = []string{
	"business", "full_name", "first", "last", "email", "role",
	"website", "industry", "sub_industry", "country", "city",
	"linkedin", "company_linkedin", "source_url", "description", "employee_count",
}

// AttestationFields are the terms-attestation fields checked first.
var AttestationFields = []string{
	"wallet_ss58", "terms_version_hash", "lawful_collection",
	"no_restricted_sources", "license_granted",
}

// ValidSourceTypes enumerates accepted provenance declarations.
var ValidSourceTypes = []string{
	"public_registry", "company_site", "first_party_form",
	"licensed_resale", "proprietary_database",
}

// RestrictedSources is the data-broker denylist for source_url.
var RestrictedSources = []string{
	"zoominfo.com", "apollo.io", "people-data-labs.com", "peopledatalabs.com",
	"rocketreach.co", "hunter.io", "snov.io", "lusha.com", "clearbit.com",
	"leadiq.com", "seamless.ai", "cognism.com", "uplead.com", "lead411.com",
}

// ValidEmployeeCounts are the only accepted headcount buckets; no fuzzy
// matching.
var ValidEmployeeCounts = []string{
	"0-1", "2-10", "11-50", "51-200", "201-500",
	"501-1,000", "1,001-5,000", "5,001-10,000", "10,001+",
}

// EmployeeCountRanges maps each bucket to its numeric [min, max] range.
var EmployeeCountRanges = map[string][2]int{
	"0-1":          {0, 1},
	"2-10":         {2, 10},
	"11-50":        {11, 50},
	"51-200":       {51, 200},
	"201-500":      {201, 500},
	"501-1,000":    {501, 1000},
	"1,001-5,000":  {1001, 5000},
	"5,001-10,000": {5001, 10000},
	"10,001+":      {10001, 100000},
}
