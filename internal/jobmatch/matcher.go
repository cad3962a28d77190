package jobmatch

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"ats-backend/internal/parser"
)

var (
	yearsExpAllRe  = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
	quotedRe       = regexp.MustCompile(`"([^"]+)"`)
	capturedWordRe = regexp.MustCompile(`\b[A-Z][a-z]*(?:\.[a-z]+)*\b`)
	bulletItemRe   = regexp.MustCompile(`[•\-*]\s*([^\n]+)`)
	bulletSkillRe  = regexp.MustCompile(`\b([A-Z][a-zA-Z+#.]+(?:\s+[A-Z][a-zA-Z+#.]+)?)\b`)

	requirementHeaders = []string{"requirements", "qualifications", "must have"}
	sectionEnders      = []string{"responsibilities", "qualifications", "requirements", "benefits", "about", "nice", "good"}
)

// Match compares a resume against one job description. All collection
// results preserve discovery order, so identical input yields identical output.
func Match(resumeText string, sections parser.ParsedSections, jobDescription string) Result {
	jobKeywords := extractJobKeywords(jobDescription)
	resumeKeywords := extractResumeKeywords(resumeText, sections)

	keywordMatch := matchKeywords(jobKeywords, resumeKeywords)
	skillGap := analyzeSkillGap(jobDescription, sections)
	score := matchScore(keywordMatch, skillGap)

	return Result{
		MatchScore:           score,
		KeywordMatch:         keywordMatch,
		SkillGap:             skillGap,
		Recommendations:      recommendations(keywordMatch, skillGap, jobDescription),
		ImprovementPotential: improvementPotential(score, keywordMatch, skillGap),
	}
}

func extractJobKeywords(jobDescription string) []string {
	var keywords []string
	seen := map[string]bool{}
	add := func(k string) {
		k = strings.ToLower(k)
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}

	for _, pattern := range technicalPatterns {
		for _, m := range pattern.FindAllString(jobDescription, -1) {
			add(m)
		}
	}

	for _, m := range yearsExpAllRe.FindAllString(jobDescription, -1) {
		add(m)
	}

	lower := strings.ToLower(jobDescription)
	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			add(skill)
		}
	}
	for _, term := range roleTerms {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	for _, m := range quotedRe.FindAllStringSubmatch(jobDescription, -1) {
		cleaned := strings.ToLower(m[1])
		if len(cleaned) > 2 && len(cleaned) < 50 {
			add(cleaned)
		}
	}

	return keywords
}

func extractResumeKeywords(text string, sections parser.ParsedSections) []string {
	var keywords []string
	seen := map[string]bool{}
	add := func(k string) {
		k = strings.ToLower(k)
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}

	for _, skill := range sections.Skills {
		add(skill)
	}

	for _, exp := range sections.Experience {
		if exp.Title != "" {
			add(exp.Title)
		}
		for _, desc := range exp.Description {
			for _, m := range capturedWordRe.FindAllString(desc, -1) {
				add(m)
			}
		}
	}

	lower := strings.ToLower(text)
	for _, term := range commonResumeTerms {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	return keywords
}

// matchKeywords treats a keyword as present when either side contains the
// other as a substring, so "node" matches "node.js" and vice versa.
func matchKeywords(jobKeywords, resumeKeywords []string) KeywordMatch {
	matched := []string{}
	missing := []string{}

	for _, keyword := range jobKeywords {
		found := false
		for _, rk := range resumeKeywords {
			if strings.Contains(rk, keyword) || strings.Contains(keyword, rk) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	percentage := 0
	if len(jobKeywords) > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(len(jobKeywords)) * 100))
	}

	return KeywordMatch{Matched: matched, Missing: missing, Percentage: percentage}
}

func analyzeSkillGap(jobDescription string, sections parser.ParsedSections) SkillGap {
	required := extractRequiredSkills(jobDescription)

	resumeSkills := make([]string, 0, len(sections.Skills))
	for _, s := range sections.Skills {
		resumeSkills = append(resumeSkills, strings.ToLower(s))
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range required {
		lowerSkill := strings.ToLower(skill)
		found := false
		for _, rs := range resumeSkills {
			if strings.Contains(rs, lowerSkill) || strings.Contains(lowerSkill, rs) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	additional := []string{}
	for _, skill := range resumeSkills {
		related := false
		for _, req := range required {
			lowerReq := strings.ToLower(req)
			if strings.Contains(lowerReq, skill) || strings.Contains(skill, lowerReq) {
				related = true
				break
			}
		}
		if !related {
			additional = append(additional, skill)
		}
	}

	return SkillGap{
		RequiredSkills:   required,
		MatchedSkills:    matched,
		MissingSkills:    missing,
		AdditionalSkills: additional,
	}
}

func extractRequiredSkills(jobDescription string) []string {
	var skills []string
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	requirementsText := requirementsBlock(jobDescription)

	for _, item := range bulletItemRe.FindAllString(requirementsText, -1) {
		for _, s := range bulletSkillRe.FindAllString(item, -1) {
			if len(s) >= 2 && len(s) <= 30 {
				add(s)
			}
		}
	}

	lower := strings.ToLower(jobDescription)
	for _, skill := range commonRequiredSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			add(skill)
		}
	}

	if len(skills) > 30 {
		skills = skills[:30]
	}
	return skills
}

// requirementsBlock isolates the requirements/qualifications section when
// the description has one; otherwise the whole text is scanned.
func requirementsBlock(jobDescription string) string {
	lines := strings.Split(jobDescription, "\n")

	start := -1
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		trimmed = strings.TrimSuffix(trimmed, ":")
		for _, header := range requirementHeaders {
			if trimmed == header || strings.HasPrefix(trimmed, header) {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return jobDescription
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		trimmed := strings.ToLower(strings.TrimSpace(lines[i]))
		for _, ender := range sectionEnders {
			if strings.HasPrefix(trimmed, ender) {
				end = i
				break
			}
		}
		if end != len(lines) {
			break
		}
	}

	return strings.Join(lines[start:end], "\n")
}

func matchScore(keywordMatch KeywordMatch, skillGap SkillGap) int {
	keywordScore := float64(keywordMatch.Percentage) * 0.6

	skillRatio := 0.0
	if len(skillGap.RequiredSkills) > 0 {
		skillRatio = float64(len(skillGap.MatchedSkills)) / float64(len(skillGap.RequiredSkills))
	}
	skillScore := skillRatio * 40

	return int(math.Round(keywordScore + skillScore))
}

func recommendations(keywordMatch KeywordMatch, skillGap SkillGap, jobDescription string) []string {
	recs := []string{}

	if len(keywordMatch.Missing) > 0 {
		top := keywordMatch.Missing
		if len(top) > 5 {
			top = top[:5]
		}
		recs = append(recs, "Add these missing keywords to your resume: "+strings.Join(top, ", "))
	}
	if len(skillGap.MissingSkills) > 0 {
		top := skillGap.MissingSkills
		if len(top) > 5 {
			top = top[:5]
		}
		recs = append(recs, "Consider adding these skills to your resume: "+strings.Join(top, ", "))
	}

	if m := yearsExpAllRe.FindStringSubmatch(jobDescription); m != nil {
		recs = append(recs, fmt.Sprintf("This role requires %s+ years of experience. Ensure your resume clearly shows relevant experience duration.", m[1]))
	}

	if keywordMatch.Percentage < 50 {
		recs = append(recs, "Your resume has less than 50% keyword match. Tailor your resume more closely to this job description.")
	}
	if len(skillGap.AdditionalSkills) > 5 {
		recs = append(recs, "You have many additional skills not mentioned in the job description. Consider highlighting the most relevant ones.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Your resume is a good match! Consider adding specific achievements that align with the job responsibilities.")
	}

	return recs
}

// improvementPotential is the headroom if every missing keyword and skill
// were added, capped so score plus potential never exceeds 100.
func improvementPotential(score int, keywordMatch KeywordMatch, skillGap SkillGap) int {
	potential := score + len(keywordMatch.Missing)*2 + len(skillGap.MissingSkills)*3
	if potential > 100 {
		potential = 100
	}
	return potential - score
}
