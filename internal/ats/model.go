package ats

// ScoreBreakdown holds the six independent sub-scores, each clamped to [0,100].
type ScoreBreakdown struct {
	KeywordRelevance  int `json:"keywordRelevance"`
	SectionStructure  int `json:"sectionStructure"`
	Formatting        int `json:"formatting"`
	ExperienceQuality int `json:"experienceQuality"`
	SkillsMatch       int `json:"skillsMatch"`
	FileStructure     int `json:"fileStructure"`
}

// SectionFeedback is per-section rule-based feedback.
type SectionFeedback struct {
	Section     string   `json:"section"`
	Score       int      `json:"score"`
	Status      string   `json:"status"` // good | warning | error
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// KeywordAnalysis reports found/missing keywords for the detected industry.
type KeywordAnalysis struct {
	Found            []string `json:"found"`
	Missing          []string `json:"missing"`
	RelevanceScore   int      `json:"relevanceScore"`
	IndustryKeywords []string `json:"industryKeywords"`
}

// Improvement is a single actionable suggestion.
type Improvement struct {
	Type       string `json:"type"` // critical | major | minor
	Section    string `json:"section"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example,omitempty"`
}

// FormatIssue flags a formatting pattern that can break ATS parsing.
type FormatIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // high | medium | low
}

// AnalysisResult is the complete output of CalculateScore.
type AnalysisResult struct {
	OverallScore int               `json:"overallScore"`
	Scores       ScoreBreakdown    `json:"scores"`
	Feedback     []SectionFeedback `json:"feedback"`
	Keywords     KeywordAnalysis   `json:"keywords"`
	Improvements []Improvement     `json:"improvements"`
	FormatIssues []FormatIssue     `json:"formatIssues"`
}

func feedbackStatus(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 50:
		return "warning"
	default:
		return "error"
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
