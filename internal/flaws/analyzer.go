package flaws

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"ats-backend/internal/ats"
	"ats-backend/internal/parser"
)

var (
	quantifiedRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(users?|customers?|clients?|projects?|team members?)`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	strongVerbs = []string{
		"led", "developed", "implemented", "achieved", "increased",
		"reduced", "designed", "built", "managed", "created",
	}
)

// Analyze grades the resume for readiness: a flaw list, the fixed tip
// checklist, and a combined readiness score with a verdict tier.
func Analyze(text string, sections parser.ParsedSections, analysis ats.AnalysisResult) EnhancedAnalysis {
	detected := detectFlaws(text, sections, analysis)
	tips := approvalTips(text, sections, analysis)
	score := readinessScore(detected, tips)

	return EnhancedAnalysis{
		Flaws:            detected,
		ApprovalTips:     tips,
		OverallReadiness: readinessTier(score),
		ReadinessScore:   score,
		Summary:          summarize(detected, score),
	}
}

func readinessTier(score int) string {
	switch {
	case score >= 80:
		return "ready"
	case score >= 50:
		return "needs_work"
	default:
		return "not_ready"
	}
}

func detectFlaws(text string, sections parser.ParsedSections, analysis ats.AnalysisResult) []Flaw {
	flaws := []Flaw{}

	if sections.Contact.Email == "" {
		flaws = append(flaws, Flaw{
			Category:    "critical",
			Title:       "Missing Email Address",
			Description: "Your resume does not contain a visible email address.",
			Impact:      "Recruiters cannot contact you, and ATS systems may reject your application.",
			HowToFix:    "Add your professional email address prominently at the top of your resume.",
			Examples:    []string{"john.smith@email.com", "jane.doe@gmail.com"},
		})
	}
	if sections.Contact.Phone == "" {
		flaws = append(flaws, Flaw{
			Category:    "critical",
			Title:       "Missing Phone Number",
			Description: "No phone number detected in your resume.",
			Impact:      "Limits recruiter's ability to reach you quickly.",
			HowToFix:    "Include your phone number in the contact section.",
			Examples:    []string{"+1 (555) 123-4567", "555-123-4567"},
		})
	}
	if len(sections.Experience) == 0 {
		flaws = append(flaws, Flaw{
			Category:    "critical",
			Title:       "No Work Experience Section",
			Description: "Your resume lacks a work experience section.",
			Impact:      "ATS systems prioritize work experience. Without it, your resume may score very low.",
			HowToFix:    `Add a clear "Work Experience" or "Professional Experience" section with your job history.`,
			Examples: []string{
				"SOFTWARE ENGINEER | ABC Company | Jan 2020 - Present",
				"• Developed RESTful APIs serving 10,000+ daily users",
				"• Reduced deployment time by 40% through CI/CD implementation",
			},
		})
	}
	if len(sections.Skills) == 0 {
		flaws = append(flaws, Flaw{
			Category:    "critical",
			Title:       "No Skills Section",
			Description: "Skills section is missing from your resume.",
			Impact:      "ATS systems match job keywords against skills. Missing skills = missing matches.",
			HowToFix:    `Create a dedicated "Skills" or "Technical Skills" section.`,
			Examples:    []string{"Programming: JavaScript, Python, Java", "Tools: Docker, AWS, Git"},
		})
	}

	if meaningfulWordCount(text) < 100 {
		flaws = append(flaws, Flaw{
			Category:    "major",
			Title:       "Insufficient Text Content Detected",
			Description: "Your resume has very little extractable text. This may indicate an image-heavy or graphical resume.",
			Impact:      "ATS systems cannot read images or graphics. Your resume may appear blank to automated systems.",
			HowToFix:    "Use a text-based resume format. Avoid graphics, images, logos, and complex layouts.",
			Examples:    []string{"Use simple, clean layouts", "Stick to standard fonts like Arial, Calibri, or Times New Roman"},
		})
	}

	if len(sections.Experience) > 0 && !hasQuantifiedAchievements(sections.Experience) {
		flaws = append(flaws, Flaw{
			Category:    "major",
			Title:       "No Quantified Achievements",
			Description: "Your experience bullets lack specific numbers and metrics.",
			Impact:      "Quantified achievements are 40% more likely to catch recruiter attention.",
			HowToFix:    "Add specific numbers, percentages, and metrics to your accomplishments.",
			Examples: []string{
				`"Improved sales performance" is weak`,
				`"Increased sales by 35% within 6 months, generating $500K in new revenue" is strong`,
				`"Managed a team" is weak`,
				`"Led a team of 8 engineers to deliver 3 major product releases" is strong`,
			},
		})
	}

	if len(sections.Summary) < 50 {
		flaws = append(flaws, Flaw{
			Category:    "major",
			Title:       "Missing or Weak Professional Summary",
			Description: "Your resume lacks a compelling professional summary.",
			Impact:      "A strong summary helps both ATS and recruiters quickly understand your value.",
			HowToFix:    "Add a 2-4 sentence summary highlighting your experience, key skills, and career goals.",
			Examples: []string{
				"Results-driven software engineer with 5+ years of experience in full-stack development. Proven track record of building scalable applications serving 1M+ users. Expertise in React, Node.js, and AWS.",
			},
		})
	}

	if len(sections.Experience) > 0 && strongVerbCount(sections.Experience) < 3 {
		flaws = append(flaws, Flaw{
			Category:    "major",
			Title:       "Weak Action Verbs",
			Description: "Your resume lacks strong action verbs that demonstrate impact.",
			Impact:      "Strong verbs improve ATS matching and make your achievements more compelling.",
			HowToFix:    "Start each bullet point with a powerful action verb.",
			Examples: []string{
				"Strong verbs: Led, Developed, Implemented, Achieved, Increased, Reduced, Designed, Optimized, Spearheaded",
				`"Was responsible for managing..." is weak`,
				`"Managed a portfolio of 20+ client accounts..." is strong`,
			},
		})
	}

	if sections.Contact.LinkedIn == "" {
		flaws = append(flaws, Flaw{
			Category:    "minor",
			Title:       "No LinkedIn Profile",
			Description: "LinkedIn URL is not included in your resume.",
			Impact:      "Many recruiters check LinkedIn for additional information.",
			HowToFix:    "Add your LinkedIn profile URL to your contact information.",
			Examples:    []string{"linkedin.com/in/yourname"},
		})
	}
	if len(sections.Education) == 0 {
		flaws = append(flaws, Flaw{
			Category:    "minor",
			Title:       "Missing Education Section",
			Description: "No education information found.",
			Impact:      "Some ATS systems and jobs require education verification.",
			HowToFix:    "Add your educational background with degree, institution, and graduation date.",
			Examples:    []string{"Bachelor of Science in Computer Science | MIT | May 2020"},
		})
	}
	if n := len(sections.Skills); n < 5 {
		flaws = append(flaws, Flaw{
			Category:    "minor",
			Title:       "Insufficient Skills Listed",
			Description: fmt.Sprintf("Only %d skills detected. This is below the recommended 10-15.", n),
			Impact:      "Fewer skills mean fewer keyword matches with job descriptions.",
			HowToFix:    "Add more relevant technical and soft skills.",
			Examples:    []string{"Aim for 10-15 key skills", "Include both hard skills (Python, SQL) and soft skills (Leadership, Communication)"},
		})
	}

	var highSeverity []string
	for _, issue := range analysis.FormatIssues {
		if issue.Severity == "high" {
			highSeverity = append(highSeverity, issue.Description)
		}
	}
	if len(highSeverity) > 0 {
		flaws = append(flaws, Flaw{
			Category:    "major",
			Title:       "Formatting Issues Detected",
			Description: strings.Join(highSeverity, "; "),
			Impact:      "Poor formatting can cause ATS parsing errors.",
			HowToFix:    "Use a clean, single-column layout with standard fonts and no tables or graphics.",
		})
	}

	return flaws
}

// approvalTips always returns the same 14 tips; only implemented varies.
func approvalTips(text string, sections parser.ParsedSections, analysis ats.AnalysisResult) []ApprovalTip {
	wordCount := len(whitespaceRe.Split(text, -1))

	hasTableIssue := false
	for _, issue := range analysis.FormatIssues {
		if issue.Type == "tables" {
			hasTableIssue = true
		}
	}

	hasTitledExperience := len(sections.Experience) > 0 && sections.Experience[0].Title != ""

	return []ApprovalTip{
		{
			Category:    "Contact Information",
			Title:       "Include Complete Contact Details",
			Description: "Full name, email, phone number, LinkedIn, and location (city, state)",
			Priority:    "high",
			Implemented: sections.Contact.Email != "" && sections.Contact.Phone != "",
		},
		{
			Category:    "Format",
			Title:       "Use ATS-Friendly File Format",
			Description: "Save your resume as PDF or DOCX. Avoid images or scanned documents.",
			Priority:    "high",
			Implemented: true,
		},
		{
			Category:    "Format",
			Title:       "Use Standard Section Headers",
			Description: `Use clear headers like "Work Experience", "Education", "Skills" instead of creative alternatives.`,
			Priority:    "high",
			Implemented: analysis.Scores.SectionStructure >= 70,
		},
		{
			Category:    "Format",
			Title:       "Avoid Tables, Graphics, and Images",
			Description: "ATS cannot read images. Use plain text and simple bullet points.",
			Priority:    "high",
			Implemented: !hasTableIssue,
		},
		{
			Category:    "Format",
			Title:       "Use Standard Fonts",
			Description: "Stick to Arial, Calibri, Times New Roman, or similar readable fonts.",
			Priority:    "medium",
			Implemented: true,
		},
		{
			Category:    "Keywords",
			Title:       "Include Industry Keywords",
			Description: "Mirror keywords from the job description naturally throughout your resume.",
			Priority:    "high",
			Implemented: analysis.Scores.KeywordRelevance >= 60,
		},
		{
			Category:    "Keywords",
			Title:       "Use Both Acronyms and Full Terms",
			Description: `Include both "SEO" and "Search Engine Optimization" to match various ATS searches.`,
			Priority:    "medium",
			Implemented: len(analysis.Keywords.Found) >= 10,
		},
		{
			Category:    "Experience",
			Title:       "Quantify Your Achievements",
			Description: "Use numbers, percentages, and dollar amounts to demonstrate impact.",
			Priority:    "high",
			Implemented: analysis.Scores.ExperienceQuality >= 70,
		},
		{
			Category:    "Experience",
			Title:       "Use Strong Action Verbs",
			Description: "Start bullets with verbs like Developed, Led, Implemented, Achieved, Increased.",
			Priority:    "high",
			Implemented: analysis.Scores.ExperienceQuality >= 60,
		},
		{
			Category:    "Experience",
			Title:       "Include Relevant Job Titles",
			Description: "Use industry-standard job titles that match what recruiters search for.",
			Priority:    "medium",
			Implemented: hasTitledExperience,
		},
		{
			Category:    "Skills",
			Title:       "Create a Dedicated Skills Section",
			Description: "List 10-15 relevant skills in a separate, clearly labeled section.",
			Priority:    "high",
			Implemented: len(sections.Skills) >= 5,
		},
		{
			Category:    "Skills",
			Title:       "Include Both Hard and Soft Skills",
			Description: "Technical skills + soft skills like Leadership, Communication, Problem-solving.",
			Priority:    "medium",
			Implemented: len(sections.Skills) >= 8,
		},
		{
			Category:    "Summary",
			Title:       "Write a Targeted Professional Summary",
			Description: "2-4 sentences highlighting your experience level, key skills, and career objective.",
			Priority:    "medium",
			Implemented: len(sections.Summary) >= 100,
		},
		{
			Category:    "Length",
			Title:       "Keep Resume to 1-2 Pages",
			Description: "Entry-level: 1 page. Experienced: 1-2 pages. Executives: up to 3 pages.",
			Priority:    "medium",
			Implemented: wordCount >= 300 && wordCount <= 1200,
		},
	}
}

func readinessScore(detected []Flaw, tips []ApprovalTip) int {
	score := 100
	for _, flaw := range detected {
		switch flaw.Category {
		case "critical":
			score -= 15
		case "major":
			score -= 10
		default:
			score -= 5
		}
	}

	implemented := 0
	for _, tip := range tips {
		if tip.Implemented {
			implemented++
		}
	}
	ratio := float64(implemented) / float64(len(tips))
	combined := int(math.Round(float64(score)*0.7 + ratio*100*0.3))

	if combined < 0 {
		return 0
	}
	if combined > 100 {
		return 100
	}
	return combined
}

func summarize(detected []Flaw, score int) string {
	critical := 0
	major := 0
	for _, flaw := range detected {
		switch flaw.Category {
		case "critical":
			critical++
		case "major":
			major++
		}
	}

	switch {
	case score >= 80:
		return "Your resume is well-optimized for ATS systems. Focus on minor tweaks to achieve a perfect score."
	case score >= 60:
		return fmt.Sprintf("Your resume has potential but needs improvements. Found %d critical and %d major issues to address.", critical, major)
	case score >= 40:
		return fmt.Sprintf("Your resume needs significant work to pass ATS systems. Address the %d critical issues first.", critical)
	default:
		return "Your resume is not ATS-ready. It may be rejected by automated systems. Please address all critical issues immediately."
	}
}

func meaningfulWordCount(text string) int {
	count := 0
	for _, word := range whitespaceRe.Split(text, -1) {
		if len(word) > 1 {
			count++
		}
	}
	return count
}

func hasQuantifiedAchievements(experience []parser.ExperienceItem) bool {
	for _, exp := range experience {
		for _, bullet := range exp.Description {
			if quantifiedRe.MatchString(bullet) {
				return true
			}
		}
	}
	return false
}

func strongVerbCount(experience []parser.ExperienceItem) int {
	var parts []string
	for _, exp := range experience {
		parts = append(parts, strings.Join(exp.Description, " "))
	}
	combined := strings.ToLower(strings.Join(parts, " "))

	count := 0
	for _, verb := range strongVerbs {
		if strings.Contains(combined, verb) {
			count++
		}
	}
	return count
}
