package flaws

// Flaw is a single detected weakness, graded by severity.
type Flaw struct {
	Category    string   `json:"category"` // critical | major | minor
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	HowToFix    string   `json:"howToFix"`
	Examples    []string `json:"examples,omitempty"`
}

// ApprovalTip is one item of the fixed readiness checklist.
type ApprovalTip struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high | medium | low
	Implemented bool   `json:"implemented"`
}

// EnhancedAnalysis bundles flaws, the tip checklist, and a readiness verdict.
type EnhancedAnalysis struct {
	Flaws            []Flaw        `json:"flaws"`
	ApprovalTips     []ApprovalTip `json:"approvalTips"`
	OverallReadiness string        `json:"overallReadiness"` // ready | needs_work | not_ready
	ReadinessScore   int           `json:"readinessScore"`
	Summary          string        `json:"summary"`
}
