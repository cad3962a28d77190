package ats

// Industry keyword dictionary. Order matters: industry detection resolves
// ties to the earliest entry, with "general" as the fallback.
var industryOrder = []string{"tech", "business", "marketing", "data", "general"}

var industryKeywords = map[string][]string{
	"general": {
		"leadership", "management", "communication", "teamwork", "problem-solving",
		"analytical", "strategic", "organized", "detail-oriented", "results-driven",
		"innovative", "collaborative", "adaptable", "proactive", "motivated",
	},
	"tech": {
		"software development", "agile", "scrum", "devops", "cloud computing",
		"microservices", "api", "database", "testing", "deployment",
		"scalability", "performance", "security", "automation", "integration",
		"full-stack", "frontend", "backend", "mobile development", "web development",
	},
	"business": {
		"project management", "stakeholder", "roi", "kpi", "budget",
		"strategy", "operations", "process improvement", "client relations",
		"business development", "account management", "revenue growth",
	},
	"marketing": {
		"seo", "sem", "social media", "content marketing", "brand management",
		"analytics", "campaign", "lead generation", "digital marketing",
		"email marketing", "conversion", "engagement",
	},
	"data": {
		"data analysis", "machine learning", "statistics", "visualization",
		"python", "sql", "tableau", "power bi", "big data", "predictive modeling",
		"data mining", "etl", "reporting", "insights",
	},
}

// Action verbs that strengthen resume bullets.
var actionVerbs = []string{
	"achieved", "accomplished", "accelerated", "administered", "analyzed",
	"built", "created", "coordinated", "delivered", "designed", "developed",
	"directed", "enhanced", "established", "exceeded", "executed", "expanded",
	"generated", "implemented", "improved", "increased", "initiated", "innovated",
	"launched", "led", "managed", "negotiated", "optimized", "orchestrated",
	"pioneered", "produced", "reduced", "resolved", "revamped", "spearheaded",
	"streamlined", "strengthened", "transformed", "unified",
}

func isActionVerb(word string) bool {
	for _, verb := range actionVerbs {
		if verb == word {
			return true
		}
	}
	return false
}
