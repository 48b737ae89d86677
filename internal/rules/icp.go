package rules

// ICP is an ideal-customer-profile definition: the scoring engine rewards
// leads whose sub-industry, role, and (optionally) region match one.
type ICP struct {
	Name          string
	SubIndustries []string
	Roles         []string
	Regions       []string // empty = no region filter
}

// ICPDefinitions in priority order; the first match wins.
var ICPDefinitions = []ICP{
	{
		Name:          "Fuel/Energy Operations",
		SubIndustries: []string{"fuel", "oil and gas", "fossil fuels", "energy"},
		Roles: []string{"coo", "chief operating officer", "director of operations", "vp of operations",
			"cto", "chief technology officer", "vp of engineering", "cio", "chief information officer"},
	},
	{
		Name:          "Agriculture/Farming",
		SubIndustries: []string{"agriculture", "farming", "agtech", "livestock", "aquaculture"},
		Roles: []string{"coo", "chief operating officer", "vp of operations", "cto", "chief technology officer",
			"vp of engineering", "cio", "chief information officer"},
	},
	{
		Name: "Renewable Energy",
		SubIndustries: []string{"solar", "wind energy", "renewable energy", "clean energy",
			"biomass energy", "energy storage", "energy efficiency"},
		Roles: []string{"coo", "vp of operations", "cto", "vp of engineering", "cio",
			"asset manager", "site manager", "plant manager", "facility manager"},
	},
	{
		Name:          "Winery/Horticulture",
		SubIndustries: []string{"winery", "wine and spirits", "horticulture", "farming", "agriculture", "hydroponics"},
		Roles: []string{"coo", "vp of operations", "cto", "vp of engineering", "cio",
			"farm manager", "vineyard manager", "head grower", "production manager"},
	},
	{
		Name:          "E-Commerce/Retail Marketing",
		SubIndustries: []string{"e-commerce", "e-commerce platforms", "retail", "retail technology"},
		Roles: []string{"vp ecommerce", "vp e-commerce", "director of ecommerce", "head of growth",
			"vp of growth", "chief growth officer", "cmo", "chief marketing officer",
			"vp of marketing", "founder", "co-founder", "ceo"},
	},
	{
		Name: "Digital Marketing/Advertising",
		SubIndustries: []string{"digital marketing", "email marketing", "marketing",
			"marketing automation", "advertising", "advertising platforms",
			"affiliate marketing", "content marketing"},
		Roles: []string{"founder", "co-founder", "ceo", "director of partnerships", "vp of partnerships",
			"head of strategy", "chief strategy officer", "cmo", "managing director", "president"},
	},
	{
		Name: "AI/ML Technical",
		SubIndustries: []string{"artificial intelligence", "machine learning",
			"natural language processing", "predictive analytics"},
		Roles: []string{"ceo", "founder", "co-founder", "cto", "vp of engineering", "head of engineering",
			"vp of ai", "head of ai", "director of ai", "vp of machine learning",
			"chief ai officer", "chief data officer", "software engineer"},
	},
	{
		Name: "Real Estate Investment",
		SubIndustries: []string{"real estate", "real estate investment", "residential",
			"commercial real estate", "property development", "property management"},
		Roles: []string{"ceo", "owner", "co-owner", "sole operator", "founder", "co-founder",
			"managing partner", "managing director", "principal", "president", "partner"},
	},
	{
		Name: "Wealth Management/Family Office",
		SubIndustries: []string{"asset management", "venture capital", "hedge funds",
			"financial services", "impact investing"},
		Roles: []string{"ceo", "president", "managing director", "managing partner", "principal", "partner",
			"founder", "cio", "chief investment officer", "portfolio manager", "wealth manager",
			"coo", "cfo", "family office manager"},
	},
	{
		Name: "FinTech/Banking Risk & Compliance",
		SubIndustries: []string{"fintech", "banking", "payments", "financial services",
			"credit cards", "mobile payments", "transaction processing"},
		Roles: []string{"cro", "chief risk officer", "vp of risk", "head of risk", "director of risk",
			"cco", "chief compliance officer", "vp of compliance", "head of compliance",
			"compliance officer", "bsa officer", "aml officer", "kyc manager"},
	},
	{
		Name:          "Clinical Research/Labs",
		SubIndustries: []string{"clinical trials", "biotechnology", "pharmaceutical", "biopharma", "life science"},
		Roles: []string{"data scientist", "data manager", "clinical data manager", "biostatistician",
			"ceo", "cto", "coo", "cso", "chief scientific officer", "vp of operations"},
	},
	{
		Name:          "Research/Academic",
		SubIndustries: []string{"higher education", "life science", "biotechnology", "neuroscience", "genetics"},
		Roles: []string{"principal investigator", "lead researcher", "senior researcher", "research director",
			"professor", "associate professor", "assistant professor", "research scientist",
			"lab director", "department head"},
	},
	{
		Name:          "Biotech/Pharma",
		SubIndustries: []string{"biotechnology", "biopharma", "pharmaceutical", "genetics", "life science", "bioinformatics"},
		Roles: []string{"ceo", "founder", "cto", "cso", "chief scientific officer", "coo", "cmo",
			"vp of business development", "head of business development", "vp of partnerships"},
	},
	{
		Name: "Broadcasting/Media (Africa)",
		SubIndustries: []string{"broadcasting", "video", "digital media", "content",
			"content delivery network", "telecommunications", "digital entertainment"},
		Roles: []string{"cto", "cfo", "head of engineering", "vp of engineering",
			"head of video", "head of streaming", "head of ott", "director of ott",
			"head of product", "chief product officer"},
		Regions: []string{"africa", "nigeria", "south africa", "kenya", "ghana", "egypt", "morocco",
			"ethiopia", "tanzania", "uganda", "algeria", "sudan", "angola", "cameroon"},
	},
	{
		Name: "Hospitality/Hotels (US)",
		SubIndustries: []string{"hospitality", "hotel", "resorts", "travel accommodations",
			"vacation rental", "tourism"},
		Roles: []string{"business development", "vp of business development", "owner", "co-owner",
			"founder", "ceo", "president", "general manager", "gm",
			"operations manager", "director of operations", "hotel manager"},
		Regions: USCountryAliases,
	},
	{
		Name: "Small/Local Businesses (US)",
		SubIndustries: []string{"local business", "local", "retail", "restaurants", "food and beverage",
			"professional services", "home services", "real estate", "construction",
			"automotive", "health care", "fitness", "beauty", "consulting"},
		Roles: []string{"owner", "co-owner", "business owner", "sole proprietor", "sole operator",
			"franchise owner", "franchisee", "store owner", "founder", "ceo", "principal", "partner"},
		Regions: USCountryAliases,
	},
}

// RoleExpansions maps spelled-out C-suite titles to their abbreviations for
// ICP role matching.
var RoleExpansions = map[string]string{
	"chief executive officer":   "ceo",
	"chief technology officer":  "cto",
	"chief operating officer":   "coo",
	"chief financial officer":   "cfo",
	"chief marketing officer":   "cmo",
	"chief information officer": "cio",
	"chief scientific officer":  "cso",
	"chief risk officer":        "cro",
	"chief compliance officer":  "cco",
	"chief product officer":     "cpo",
	"chief ai officer":          "caio",
	"chief data officer":        "cdo",
	"vice president":            "vp",
}
