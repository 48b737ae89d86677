package rules

// LocationMaxLength is the validator's limit for city/country/region fields.
const LocationMaxLength = 50

// LocationGarbagePatterns reject business jargon, URL fragments, street
// addresses, and placeholders in location fields.
var LocationGarbagePatterns = []string{
	// Business terms
	"software", "technology", "solutions", "services", "consulting",
	"marketing", "sales", "engineering", "development", "management",
	// URL patterns
	"http://", "https://", "www.", ".com", ".org", ".io",
	// Department names
	"department", "division", "team", "group", "unit",
	// Street address indicators
	"street", "avenue", "boulevard", "road", "suite", "floor",
	// Generic placeholders
	"n/a", "none", "null", "undefined", "test", "asdf",
}

// USCountryAliases match the country field by case-insensitive substring.
var USCountryAliases = []string{"united states", "usa", "us", "america", "u.s.", "u.s.a."}

// MajorHubsByCountry lists canonical major-hub cities per country, used by
// the company-size scoring heuristic.
var MajorHubsByCountry = map[string]map[string]bool{
	"united states": set(
		"new york city", "manhattan", "brooklyn", "san francisco", "los angeles",
		"san diego", "san jose", "seattle", "portland", "austin", "dallas", "houston",
		"chicago", "boston", "denver", "miami", "washington", "atlanta", "phoenix",
	),
	"canada":               set("toronto", "vancouver", "montréal", "montreal"),
	"united kingdom":       set("london", "manchester", "edinburgh", "cambridge", "oxford"),
	"germany":              set("berlin", "münchen", "munich", "frankfurt am main", "frankfurt", "hamburg"),
	"france":               set("paris"),
	"netherlands":          set("amsterdam", "rotterdam"),
	"switzerland":          set("zürich", "zurich", "genève", "geneva"),
	"ireland":              set("dublin"),
	"sweden":               set("stockholm"),
	"spain":                set("barcelona", "madrid"),
	"hong kong":            set("hong kong"),
	"singapore":            set("singapore"),
	"japan":                set("tokyo", "osaka"),
	"south korea":          set("seoul"),
	"china":                set("shanghai", "beijing", "shenzhen"),
	"india":                set("bengaluru", "bangalore", "mumbai", "new delhi", "hyderabad", "pune"),
	"australia":            set("sydney", "melbourne"),
	"new zealand":          set("auckland"),
	"israel":               set("tel aviv"),
	"united arab emirates": set("dubai", "abu dhabi"),
	"brazil":               set("são paulo", "sao paulo"),
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}
