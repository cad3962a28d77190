package jobmatch

// KeywordMatch reports job-description keywords found and missing in a resume.
type KeywordMatch struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage int      `json:"percentage"`
}

// SkillGap compares required skills against the resume's skills section.
type SkillGap struct {
	RequiredSkills   []string `json:"requiredSkills"`
	MatchedSkills    []string `json:"matchedSkills"`
	MissingSkills    []string `json:"missingSkills"`
	AdditionalSkills []string `json:"additionalSkills"`
}

// Result is the full outcome of matching a resume against one job description.
type Result struct {
	MatchScore           int          `json:"matchScore"`
	KeywordMatch         KeywordMatch `json:"keywordMatch"`
	SkillGap             SkillGap     `json:"skillGap"`
	Recommendations      []string     `json:"recommendations"`
	ImprovementPotential int          `json:"improvementPotential"`
}
