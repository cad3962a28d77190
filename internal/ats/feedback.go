package ats

import (
	"regexp"
	"strings"

	"ats-backend/internal/parser"
)

// Stricter than the scorer's quantifiedRe: a bare client or team count does
// not excuse the missing-numbers suggestion.
var quantifiedFeedbackRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(users?|customers?|projects?)`)

func generateFeedback(sections parser.ParsedSections, scores ScoreBreakdown) []SectionFeedback {
	return []SectionFeedback{
		contactFeedback(sections.Contact),
		summaryFeedback(sections.Summary),
		experienceFeedback(sections.Experience, scores.ExperienceQuality),
		educationFeedback(sections.Education),
		skillsFeedback(sections.Skills, scores.SkillsMatch),
	}
}

func contactFeedback(contact parser.ContactInfo) SectionFeedback {
	score := 100
	issues := []string{}
	suggestions := []string{}

	if contact.Email == "" {
		issues = append(issues, "Email address is missing")
		suggestions = append(suggestions, "Add a professional email address")
		score -= 30
	}
	if contact.Phone == "" {
		issues = append(issues, "Phone number is missing")
		suggestions = append(suggestions, "Include a contact phone number")
		score -= 20
	}
	if contact.LinkedIn == "" {
		suggestions = append(suggestions, "Add your LinkedIn profile URL")
		score -= 10
	}
	if contact.Name == "" {
		issues = append(issues, "Name not clearly identified")
		suggestions = append(suggestions, "Ensure your full name is prominently displayed at the top")
		score -= 20
	}

	if score < 0 {
		score = 0
	}
	return SectionFeedback{
		Section:     "Contact Information",
		Score:       score,
		Status:      feedbackStatus(score),
		Issues:      issues,
		Suggestions: suggestions,
	}
}

func summaryFeedback(summary string) SectionFeedback {
	score := 100
	issues := []string{}
	suggestions := []string{}

	if summary == "" {
		issues = append(issues, "Professional summary is missing")
		suggestions = append(suggestions, "Add a 2-4 sentence professional summary highlighting your key qualifications")
		score = 20
	} else {
		if len(summary) < 100 {
			issues = append(issues, "Summary is too short")
			suggestions = append(suggestions, "Expand your summary to 100-300 words")
			score -= 20
		}
		if len(summary) > 500 {
			issues = append(issues, "Summary is too long")
			suggestions = append(suggestions, "Condense your summary to 100-300 words for better ATS parsing")
			score -= 15
		}
		if !digitRe.MatchString(summary) {
			suggestions = append(suggestions, `Add quantifiable achievements (e.g., "10+ years experience", "managed $1M budget")`)
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	return SectionFeedback{
		Section:     "Professional Summary",
		Score:       score,
		Status:      feedbackStatus(score),
		Issues:      issues,
		Suggestions: suggestions,
	}
}

func experienceFeedback(experience []parser.ExperienceItem, qualityScore int) SectionFeedback {
	issues := []string{}
	suggestions := []string{}
	score := qualityScore
	if score == 0 {
		score = 50
	}

	if len(experience) == 0 {
		return SectionFeedback{
			Section:     "Work Experience",
			Score:       20,
			Status:      "error",
			Issues:      []string{"Work experience section is missing"},
			Suggestions: []string{"Add your work experience with clear job titles, companies, dates, and achievements"},
		}
	}

	hasQuantifiedBullets := false
	totalBullets := 0
	for _, exp := range experience {
		if exp.Title == "" {
			issues = append(issues, "Job title missing for an experience entry")
		}
		if exp.Company == "" {
			issues = append(issues, "Company name missing for an experience entry")
		}
		if exp.StartDate == "" && exp.EndDate == "" {
			issues = append(issues, "Dates missing for an experience entry")
		}
		for _, bullet := range exp.Description {
			totalBullets++
			if quantifiedFeedbackRe.MatchString(bullet) {
				hasQuantifiedBullets = true
			}
		}
	}

	if totalBullets < len(experience)*3 {
		suggestions = append(suggestions, "Add more bullet points (3-5 per position) describing your achievements")
	}
	if !hasQuantifiedBullets {
		suggestions = append(suggestions, "Quantify your achievements with numbers, percentages, or dollar amounts")
	}
	suggestions = append(suggestions, "Start each bullet point with a strong action verb")

	score = clamp(score)
	return SectionFeedback{
		Section:     "Work Experience",
		Score:       score,
		Status:      feedbackStatus(score),
		Issues:      issues,
		Suggestions: suggestions,
	}
}

func educationFeedback(education []parser.EducationItem) SectionFeedback {
	issues := []string{}
	suggestions := []string{}
	score := 100

	if len(education) == 0 {
		return SectionFeedback{
			Section:     "Education",
			Score:       30,
			Status:      "error",
			Issues:      []string{"Education section is missing"},
			Suggestions: []string{"Add your educational background including degree, institution, and graduation date"},
		}
	}

	for _, edu := range education {
		if edu.Degree == "" {
			issues = append(issues, "Degree name is missing")
			score -= 15
		}
		if edu.Institution == "" {
			issues = append(issues, "Institution name is missing")
			score -= 15
		}
		if edu.GraduationDate == "" {
			suggestions = append(suggestions, "Add graduation date or expected graduation date")
			score -= 5
		}
	}

	if score < 0 {
		score = 0
	}
	return SectionFeedback{
		Section:     "Education",
		Score:       score,
		Status:      feedbackStatus(score),
		Issues:      issues,
		Suggestions: suggestions,
	}
}

func skillsFeedback(skills []string, skillsScore int) SectionFeedback {
	issues := []string{}
	suggestions := []string{}
	score := skillsScore
	if score == 0 {
		score = 50
	}

	if len(skills) == 0 {
		return SectionFeedback{
			Section:     "Skills",
			Score:       20,
			Status:      "error",
			Issues:      []string{"Skills section is missing"},
			Suggestions: []string{"Add a skills section with relevant technical and soft skills"},
		}
	}

	if len(skills) < 5 {
		issues = append(issues, "Skills section is too short")
		suggestions = append(suggestions, "Add more relevant skills (aim for 10-15 key skills)")
		score -= 10
	}
	if len(skills) > 30 {
		issues = append(issues, "Too many skills listed")
		suggestions = append(suggestions, "Focus on your top 15-20 most relevant skills")
		score -= 5
	}
	suggestions = append(suggestions, "Organize skills by category (e.g., Programming Languages, Tools, Soft Skills)")

	score = clamp(score)
	return SectionFeedback{
		Section:     "Skills",
		Score:       score,
		Status:      feedbackStatus(score),
		Issues:      issues,
		Suggestions: suggestions,
	}
}

// generateImprovements walks a fixed checklist of conditions; each match
// appends one improvement, most severe first.
func generateImprovements(sections parser.ParsedSections, scores ScoreBreakdown) []Improvement {
	improvements := []Improvement{}

	if sections.Contact.Email == "" {
		improvements = append(improvements, Improvement{
			Type:       "critical",
			Section:    "Contact",
			Issue:      "Missing email address",
			Suggestion: "Add your professional email address at the top of your resume",
			Example:    "john.doe@email.com",
		})
	}
	if len(sections.Experience) == 0 {
		improvements = append(improvements, Improvement{
			Type:       "critical",
			Section:    "Experience",
			Issue:      "No work experience listed",
			Suggestion: "Add your professional experience with job titles, companies, and achievements",
		})
	}
	if scores.KeywordRelevance < 50 {
		improvements = append(improvements, Improvement{
			Type:       "major",
			Section:    "Keywords",
			Issue:      "Low keyword relevance score",
			Suggestion: "Include more industry-specific keywords and action verbs throughout your resume",
			Example:    `Use terms like "managed", "developed", "implemented", "increased", "reduced"`,
		})
	}
	if scores.ExperienceQuality < 60 && len(sections.Experience) > 0 {
		improvements = append(improvements, Improvement{
			Type:       "major",
			Section:    "Experience",
			Issue:      "Weak experience descriptions",
			Suggestion: "Quantify your achievements with specific numbers and metrics",
			Example:    `Changed "Improved sales" to "Increased sales by 35% within 6 months"`,
		})
	}
	if len(sections.Summary) < 100 {
		improvements = append(improvements, Improvement{
			Type:       "minor",
			Section:    "Summary",
			Issue:      "Missing or weak professional summary",
			Suggestion: "Add a compelling 2-4 sentence summary of your qualifications",
		})
	}
	if len(sections.Projects) == 0 {
		improvements = append(improvements, Improvement{
			Type:       "minor",
			Section:    "Projects",
			Issue:      "No projects section",
			Suggestion: "Consider adding relevant projects to showcase your skills",
		})
	}
	if scores.Formatting < 70 {
		improvements = append(improvements, Improvement{
			Type:       "minor",
			Section:    "Formatting",
			Issue:      "Formatting issues detected",
			Suggestion: "Use consistent bullet points, avoid tables/graphics, use standard fonts",
		})
	}

	return improvements
}

func checkFormatting(text string) []FormatIssue {
	issues := []FormatIssue{}

	if len(nonASCIIRe.FindAllString(text, 11)) > 10 {
		issues = append(issues, FormatIssue{
			Type:        "special_characters",
			Description: "Resume contains special characters that may not parse correctly in ATS systems",
			Severity:    "medium",
		})
	}

	if tableCharsRe.MatchString(text) {
		issues = append(issues, FormatIssue{
			Type:        "tables",
			Description: "Tables detected. ATS systems may not parse tabular data correctly",
			Severity:    "high",
		})
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		first := strings.ToLower(lines[0])
		last := strings.ToLower(lines[len(lines)-1])
		if boilerplateRe.MatchString(first) || boilerplateRe.MatchString(last) {
			issues = append(issues, FormatIssue{
				Type:        "headers_footers",
				Description: "Headers/footers detected. These may interfere with ATS parsing",
				Severity:    "low",
			})
		}
	}

	wordCount := countWords(text)
	if wordCount < 200 {
		issues = append(issues, FormatIssue{
			Type:        "too_short",
			Description: "Resume appears too short. Aim for 400-800 words for a strong resume",
			Severity:    "high",
		})
	} else if wordCount > 1500 {
		issues = append(issues, FormatIssue{
			Type:        "too_long",
			Description: "Resume may be too long. Consider condensing to 1-2 pages",
			Severity:    "medium",
		})
	}

	allCaps := 0
	for _, line := range lines {
		if len(line) > 20 && line == strings.ToUpper(line) {
			allCaps++
		}
	}
	if allCaps > 5 {
		issues = append(issues, FormatIssue{
			Type:        "excessive_caps",
			Description: "Excessive use of all caps. Use title case for better readability",
			Severity:    "low",
		})
	}

	return issues
}
