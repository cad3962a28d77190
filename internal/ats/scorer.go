package ats

import (
	"math"
	"regexp"
	"strings"

	"ats-backend/internal/parser"
)

// Weights of the six sub-scores; they sum to exactly 1.0.
const (
	weightKeywordRelevance  = 0.25
	weightSectionStructure  = 0.20
	weightFormatting        = 0.15
	weightExperienceQuality = 0.15
	weightSkillsMatch       = 0.15
	weightFileStructure     = 0.10
)

var (
	quantifiedRe  = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(users?|customers?|clients?|projects?|team)`)
	nonASCIIRe    = regexp.MustCompile("[^\x00-\x7F]")
	manyTabsRe    = regexp.MustCompile(`\t{2,}`)
	manyBlanksRe  = regexp.MustCompile(`\n{4,}`)
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	boxCharRe     = regexp.MustCompile(`[│├└┤┬┴┼]`)
	manyPipesRe   = regexp.MustCompile(`\|{2,}`)
	bulletWordRe  = regexp.MustCompile(`[•\-*]\s+\w`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	digitRe       = regexp.MustCompile(`\d`)
	tableCharsRe  = regexp.MustCompile(`[│├└┤┬┴┼|]{2,}`)
	boilerplateRe = regexp.MustCompile(`page \d|^\d+$|confidential`)

	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(SUMMARY|PROFILE|OBJECTIVE)\b`),
		regexp.MustCompile(`(?i)\b(EXPERIENCE|WORK|EMPLOYMENT)\b`),
		regexp.MustCompile(`(?i)\b(EDUCATION|ACADEMIC)\b`),
		regexp.MustCompile(`(?i)\b(SKILLS|COMPETENCIES|EXPERTISE)\b`),
	}

	hardSkillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)javascript|python|java|c\+\+|typescript|react|angular|vue|node|sql|aws|azure|docker|kubernetes`),
		regexp.MustCompile(`(?i)excel|powerpoint|photoshop|figma|tableau|salesforce|sap|oracle`),
	}
	softSkillPattern = regexp.MustCompile(`(?i)leadership|communication|teamwork|problem.?solving|management|analytical|creative`)

	industryTechRe      = regexp.MustCompile(`software|developer|engineer|programming|code|api|database`)
	industryTechStackRe = regexp.MustCompile(`javascript|python|java|react|node|aws|docker`)
	industryBusinessRe  = regexp.MustCompile(`manager|director|executive|strategy|operations|business`)
	industryMarketingRe = regexp.MustCompile(`marketing|brand|campaign|seo|social media|content`)
	industryDataRe      = regexp.MustCompile(`data|analyst|machine learning|statistics|visualization|python|sql`)
)

// CalculateScore computes the full ATS compatibility analysis for a resume.
// It is deterministic and total: every call returns a complete result.
func CalculateScore(text string, sections parser.ParsedSections) AnalysisResult {
	scores := ScoreBreakdown{
		KeywordRelevance:  scoreKeywordRelevance(text),
		SectionStructure:  scoreSectionStructure(sections),
		Formatting:        scoreFormatting(text),
		ExperienceQuality: scoreExperienceQuality(sections),
		SkillsMatch:       scoreSkillsMatch(sections),
		FileStructure:     scoreFileStructure(text, sections),
	}

	return AnalysisResult{
		OverallScore: overallScore(scores),
		Scores:       scores,
		Feedback:     generateFeedback(sections, scores),
		Keywords:     analyzeKeywords(text, sections),
		Improvements: generateImprovements(sections, scores),
		FormatIssues: checkFormatting(text),
	}
}

func overallScore(scores ScoreBreakdown) int {
	total := float64(scores.KeywordRelevance)*weightKeywordRelevance +
		float64(scores.SectionStructure)*weightSectionStructure +
		float64(scores.Formatting)*weightFormatting +
		float64(scores.ExperienceQuality)*weightExperienceQuality +
		float64(scores.SkillsMatch)*weightSkillsMatch +
		float64(scores.FileStructure)*weightFileStructure
	return int(math.Round(total))
}

func scoreKeywordRelevance(text string) int {
	lowerText := strings.ToLower(text)

	totalKeywords := 0
	foundKeywords := 0
	for _, industry := range industryOrder {
		for _, keyword := range industryKeywords[industry] {
			totalKeywords++
			if strings.Contains(lowerText, keyword) {
				foundKeywords++
			}
		}
	}

	actionVerbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lowerText, verb) {
			actionVerbCount++
		}
	}

	score := 0.0

	// Keyword coverage contributes up to 60 points.
	denominator := totalKeywords
	if denominator > 50 {
		denominator = 50
	}
	keywordRatio := float64(foundKeywords) / float64(denominator)
	score += math.Min(keywordRatio*100, 60)

	// Action verbs contribute up to 40 points, against a baseline of 15.
	actionVerbRatio := float64(actionVerbCount) / 15
	score += math.Min(actionVerbRatio*40, 40)

	return clamp(int(math.Round(score)))
}

func scoreSectionStructure(sections parser.ParsedSections) int {
	const sectionPoints = 100.0 / 5

	score := 0.0
	if sections.Contact.Email != "" || sections.Contact.Phone != "" {
		score += sectionPoints
	}
	if len(sections.Summary) > 50 {
		score += sectionPoints
	}
	if len(sections.Experience) > 0 {
		score += sectionPoints
	}
	if len(sections.Education) > 0 {
		score += sectionPoints
	}
	if len(sections.Skills) > 0 {
		score += sectionPoints
	}

	if len(sections.Projects) > 0 {
		score += 5
	}
	if len(sections.Certifications) > 0 {
		score += 5
	}

	return clamp(int(math.Round(score)))
}

func scoreFormatting(text string) int {
	score := 100

	penalties := []struct {
		re      *regexp.Regexp
		penalty int
	}{
		{nonASCIIRe, 5},
		{manyTabsRe, 10},
		{manyBlanksRe, 10},
		{htmlTagRe, 15},
		{boxCharRe, 20},
		{manyPipesRe, 10},
	}
	for _, p := range penalties {
		if len(p.re.FindAllString(text, 4)) > 3 {
			score -= p.penalty
		}
	}

	wordCount := countWords(text)
	if wordCount < 200 {
		score -= 15
	}
	if wordCount > 1500 {
		score -= 10
	}

	bulletPoints := len(bulletWordRe.FindAllString(text, -1))
	if bulletPoints >= 5 {
		score += 5
	}
	if bulletPoints >= 10 {
		score += 5
	}

	return clamp(score)
}

func scoreExperienceQuality(sections parser.ParsedSections) int {
	if len(sections.Experience) == 0 {
		return 20
	}

	score := 0
	entryBase := len(sections.Experience) * 15
	if entryBase > 30 {
		entryBase = 30
	}
	score += entryBase

	for _, exp := range sections.Experience {
		if len(exp.Title) > 2 {
			score += 5
		}
		if len(exp.Company) > 2 {
			score += 5
		}
		if exp.StartDate != "" {
			score += 3
		}
		if exp.EndDate != "" || exp.Current {
			score += 2
		}

		if len(exp.Description) > 0 {
			bulletPoints := len(exp.Description) * 3
			if bulletPoints > 15 {
				bulletPoints = 15
			}
			score += bulletPoints

			for _, bullet := range exp.Description {
				if quantifiedRe.MatchString(bullet) {
					score += 5
				}
				words := strings.Fields(bullet)
				if len(words) > 0 && isActionVerb(strings.ToLower(words[0])) {
					score += 2
				}
			}
		}
	}

	return clamp(score)
}

func scoreSkillsMatch(sections parser.ParsedSections) int {
	if len(sections.Skills) == 0 {
		return 20
	}

	score := len(sections.Skills) * 5
	if score > 40 {
		score = 40
	}

	hardSkills := 0
	softSkills := 0
	for _, skill := range sections.Skills {
		for _, pattern := range hardSkillPatterns {
			if pattern.MatchString(skill) {
				hardSkills++
			}
		}
		if softSkillPattern.MatchString(skill) {
			softSkills++
		}
	}

	if hardSkills >= 5 {
		score += 20
	}
	if softSkills >= 2 {
		score += 10
	}
	if hardSkills >= 3 && softSkills >= 2 {
		score += 10
	}

	// Variety proxy: distinct first letters suggest categorized skills.
	categories := make(map[byte]bool)
	for _, skill := range sections.Skills {
		if skill != "" {
			categories[strings.ToLower(skill)[0]] = true
		}
	}
	if len(categories) >= 5 {
		score += 10
	}

	return clamp(score)
}

func scoreFileStructure(text string, sections parser.ParsedSections) int {
	score := 70

	for _, header := range headerPatterns {
		if header.MatchString(text) {
			score += 5
		}
	}

	if email := sections.Contact.Email; email != "" {
		if idx := strings.Index(text, email); idx >= 0 && idx < 500 {
			score += 10
		}
	}

	if sections.Contact.Email == "" {
		score -= 10
	}
	if sections.Contact.Phone == "" {
		score -= 5
	}

	return clamp(score)
}

func analyzeKeywords(text string, sections parser.ParsedSections) KeywordAnalysis {
	lowerText := strings.ToLower(text)

	industry := detectIndustry(sections)
	keywords := industryKeywords[industry]

	found := []string{}
	missing := []string{}
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			found = append(found, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	if len(missing) > 10 {
		missing = missing[:10]
	}

	top := keywords
	if len(top) > 20 {
		top = top[:20]
	}

	return KeywordAnalysis{
		Found:            found,
		Missing:          missing,
		RelevanceScore:   int(math.Round(float64(len(found)) / float64(len(keywords)) * 100)),
		IndustryKeywords: append([]string(nil), top...),
	}
}

// detectIndustry scores combined skills and experience text against simple
// indicator patterns; ties keep the earlier industry, defaulting to general.
func detectIndustry(sections parser.ParsedSections) string {
	var parts []string
	parts = append(parts, sections.Skills...)
	for _, exp := range sections.Experience {
		parts = append(parts, exp.Title)
		parts = append(parts, exp.Description...)
	}
	combined := strings.ToLower(strings.Join(parts, " "))

	scores := map[string]int{}
	if industryTechRe.MatchString(combined) {
		scores["tech"] += 5
	}
	if industryTechStackRe.MatchString(combined) {
		scores["tech"] += 3
	}
	if industryBusinessRe.MatchString(combined) {
		scores["business"] += 5
	}
	if industryMarketingRe.MatchString(combined) {
		scores["marketing"] += 5
	}
	if industryDataRe.MatchString(combined) {
		scores["data"] += 5
	}

	best := "general"
	bestScore := 0
	for _, industry := range industryOrder {
		if scores[industry] > bestScore {
			best = industry
			bestScore = scores[industry]
		}
	}
	return best
}

func countWords(text string) int {
	return len(whitespaceRe.Split(text, -1))
}
