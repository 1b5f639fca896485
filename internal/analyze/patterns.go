package analyze

import "regexp"

// amountPat matches a money figure after a keyword: optional dollar
// sign, digits with thousands separators, optional decimal part, and an
// optional k/m/b magnitude suffix.
const amountPat = `[:\s]+\$?([0-9,]+(?:\.[0-9]+)?)\s*([kmb]?)`

// metricPattern binds one compiled money regex to its metric family.
// Group 1 is the amount, group 2 the magnitude suffix.
type metricPattern struct {
	family string
	re     *regexp.Regexp
}

var metricPatterns = []metricPattern{
	{"revenue", regexp.MustCompile(`(?i)revenue` + amountPat)},
	{"revenue", regexp.MustCompile(`(?i)sales` + amountPat)},
	{"revenue", regexp.MustCompile(`(?i)income` + amountPat)},
	{"revenue", regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]+)?)\s*([kmb]?)\s+revenue`)},
	{"funding", regexp.MustCompile(`(?i)raised` + amountPat)},
	{"funding", regexp.MustCompile(`(?i)funding` + amountPat)},
	{"funding", regexp.MustCompile(`(?i)investment` + amountPat)},
	{"funding", regexp.MustCompile(`(?i)series\s+[abc]` + amountPat)},
	{"valuation", regexp.MustCompile(`(?i)valuation` + amountPat)},
	{"valuation", regexp.MustCompile(`(?i)valued\s+at` + amountPat)},
	{"valuation", regexp.MustCompile(`(?i)worth` + amountPat)},
}

var marketSizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)market size` + amountPat),
	regexp.MustCompile(`(?i)tam` + amountPat),
	regexp.MustCompile(`(?i)total addressable market` + amountPat),
}

// competitorPatterns capture comma-separated capitalized names after a
// competition indicator.
var competitorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)competitors?[:\s]+([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)*)`),
	regexp.MustCompile(`(?i)competitions?[:\s]+([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)*)`),
	regexp.MustCompile(`(?i)rivals?[:\s]+([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)*)`),
	regexp.MustCompile(`(?i)alternatives?[:\s]+([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)*)`),
}

var founderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)founders?[:\s]+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)co-founders?[:\s]+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)ceo[:\s]+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)founded by[:\s]+([A-Z][a-zA-Z\s]+)`),
}

// teamSizePatterns are tried in order; the first match wins.
var teamSizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)team of ([0-9]+)`),
	regexp.MustCompile(`(?i)([0-9]+) employees`),
	regexp.MustCompile(`(?i)([0-9]+) team members`),
}

var techKeywords = []string{
	"ai", "ml", "blockchain", "iot", "saas", "api", "cloud", "mobile", "web", "app",
}

// keywordGroup is an ordered dictionary entry; order matters wherever
// the first matching group wins.
type keywordGroup struct {
	name     string
	keywords []string
}

var businessModels = []keywordGroup{
	{"saas", []string{"saas", "software as a service", "subscription software"}},
	{"marketplace", []string{"marketplace", "platform", "two-sided market"}},
	{"e-commerce", []string{"e-commerce", "online store", "retail"}},
	{"fintech", []string{"fintech", "financial technology", "payments"}},
	{"healthtech", []string{"healthtech", "medical", "healthcare"}},
	{"edtech", []string{"edtech", "education", "learning platform"}},
}

var revenueModels = []keywordGroup{
	{"subscription", []string{"subscription", "monthly fee", "recurring"}},
	{"transaction", []string{"transaction fee", "commission", "per transaction"}},
	{"freemium", []string{"freemium", "free tier", "premium features"}},
	{"advertising", []string{"advertising", "ads", "sponsored content"}},
	{"licensing", []string{"licensing", "license fee", "royalty"}},
}

var targetMarketIndicators = []string{
	"target market", "customer segment", "user base", "audience",
}

var riskCategories = []keywordGroup{
	{"market", []string{"market risk", "competition", "market downturn", "demand risk"}},
	{"financial", []string{"cash flow", "funding", "burn rate", "profitability"}},
	{"operational", []string{"scalability", "operations", "supply chain", "execution"}},
	{"regulatory", []string{"regulation", "compliance", "legal", "policy"}},
	{"technology", []string{"technical risk", "security", "platform", "infrastructure"}},
	{"team", []string{"key person", "talent", "hiring", "retention"}},
}

var positiveWords = []string{
	"growth", "success", "opportunity", "strong", "excellent", "innovative", "leading",
}

var negativeWords = []string{
	"risk", "challenge", "problem", "decline", "loss", "difficult", "concern",
}

var documentTypes = []keywordGroup{
	{"pitch_deck", []string{"pitch", "deck", "presentation", "slide", "investment opportunity"}},
	{"business_plan", []string{"business plan", "executive summary", "strategy", "operations"}},
	{"financial_model", []string{"financial model", "projections", "forecast", "revenue model"}},
	{"market_analysis", []string{"market analysis", "market research", "competitive analysis"}},
	{"technical_document", []string{"technical", "architecture", "development", "api"}},
}

var topicCategories = []keywordGroup{
	{"technology", []string{"ai", "machine learning", "blockchain", "iot", "cloud", "mobile", "web"}},
	{"business", []string{"revenue", "profit", "growth", "market", "customer", "sales"}},
	{"finance", []string{"funding", "investment", "valuation", "cash flow", "burn rate"}},
	{"product", []string{"product", "feature", "platform", "solution", "service"}},
	{"market", []string{"market", "industry", "sector", "competition", "opportunity"}},
	{"team", []string{"team", "founder", "employee", "talent", "experience"}},
}
