package ats

import (
	"reflect"
	"strings"
	"testing"

	"ats-backend/internal/parser"
)

func sampleSections() parser.ParsedSections {
	return parser.ParsedSections{
		Contact: parser.ContactInfo{
			Name:  "Jane Smith",
			Email: "jane.smith@example.com",
			Phone: "(555) 123-4567",
		},
		Summary: "Experienced software engineer with 8 years building distributed systems. Led teams of 5+ engineers and delivered projects that cut infrastructure costs by 30%.",
		Experience: []parser.ExperienceItem{
			{
				Title:     "Senior Software Engineer",
				Company:   "Acme Corp",
				StartDate: "Jan 2020",
				Current:   true,
				Description: []string{
					"Developed microservices handling 2M requests per day",
					"Reduced deployment time by 40% through CI automation",
					"Managed a team of 5 engineers",
				},
			},
		},
		Education: []parser.EducationItem{
			{Degree: "Bachelor of Science in Computer Science", Institution: "State University", GraduationDate: "2016"},
		},
		Skills: []string{"JavaScript", "Python", "AWS", "Docker", "Kubernetes", "Leadership", "Communication", "SQL"},
	}
}

func sampleText() string {
	return strings.Join([]string{
		"Jane Smith",
		"jane.smith@example.com | (555) 123-4567",
		"",
		"SUMMARY",
		"Experienced software engineer with 8 years building distributed systems.",
		"",
		"EXPERIENCE",
		"Senior Software Engineer at Acme Corp",
		"Jan 2020 - Present",
		"- Developed microservices handling 2M requests per day",
		"- Reduced deployment time by 40% through CI automation",
		"- Managed a team of 5 engineers",
		"",
		"EDUCATION",
		"Bachelor of Science in Computer Science, State University, 2016",
		"",
		"SKILLS",
		"JavaScript, Python, AWS, Docker, Kubernetes, Leadership, Communication, SQL",
	}, "\n")
}

func TestCalculateScoreBounds(t *testing.T) {
	result := CalculateScore(sampleText(), sampleSections())

	check := func(name string, v int) {
		t.Helper()
		if v < 0 || v > 100 {
			t.Errorf("%s = %d, want within [0,100]", name, v)
		}
	}
	check("overallScore", result.OverallScore)
	check("keywordRelevance", result.Scores.KeywordRelevance)
	check("sectionStructure", result.Scores.SectionStructure)
	check("formatting", result.Scores.Formatting)
	check("experienceQuality", result.Scores.ExperienceQuality)
	check("skillsMatch", result.Scores.SkillsMatch)
	check("fileStructure", result.Scores.FileStructure)
}

func TestOverallScoreWeights(t *testing.T) {
	sum := weightKeywordRelevance + weightSectionStructure + weightFormatting +
		weightExperienceQuality + weightSkillsMatch + weightFileStructure
	if sum != 1.0 {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}

	uniform := ScoreBreakdown{
		KeywordRelevance:  80,
		SectionStructure:  80,
		Formatting:        80,
		ExperienceQuality: 80,
		SkillsMatch:       80,
		FileStructure:     80,
	}
	if got := overallScore(uniform); got != 80 {
		t.Errorf("overallScore(uniform 80) = %d, want 80", got)
	}
}

func TestCalculateScoreEmptyResume(t *testing.T) {
	result := CalculateScore("", parser.ParsedSections{})

	if result.OverallScore >= 50 {
		t.Errorf("empty resume overallScore = %d, want < 50", result.OverallScore)
	}
	if len(result.Feedback) != 5 {
		t.Fatalf("feedback entries = %d, want 5", len(result.Feedback))
	}
	wantSections := []string{"Contact Information", "Professional Summary", "Work Experience", "Education", "Skills"}
	for i, want := range wantSections {
		if result.Feedback[i].Section != want {
			t.Errorf("feedback[%d].Section = %q, want %q", i, result.Feedback[i].Section, want)
		}
	}

	var hasCriticalEmail, hasCriticalExperience bool
	for _, imp := range result.Improvements {
		if imp.Type == "critical" && imp.Section == "Contact" {
			hasCriticalEmail = true
		}
		if imp.Type == "critical" && imp.Section == "Experience" {
			hasCriticalExperience = true
		}
	}
	if !hasCriticalEmail {
		t.Error("expected critical Contact improvement for missing email")
	}
	if !hasCriticalExperience {
		t.Error("expected critical Experience improvement for missing experience")
	}
}

func TestCalculateScoreDeterministic(t *testing.T) {
	a := CalculateScore(sampleText(), sampleSections())
	b := CalculateScore(sampleText(), sampleSections())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different results")
	}
}

func TestSectionStructureMonotonic(t *testing.T) {
	partial := parser.ParsedSections{
		Contact: parser.ContactInfo{Email: "a@b.com"},
	}
	full := sampleSections()

	if scoreSectionStructure(partial) >= scoreSectionStructure(full) {
		t.Error("adding sections should not lower the structure score")
	}
}

func TestExperienceQualityMonotonic(t *testing.T) {
	entry := parser.ExperienceItem{
		Title:     "Software Engineer",
		Company:   "Acme Corp",
		StartDate: "Jan 2020",
		Current:   true,
		Description: []string{
			"Maintained internal services",
		},
	}
	base := parser.ParsedSections{Experience: []parser.ExperienceItem{entry}}

	quantified := entry
	quantified.Description = append(append([]string(nil), entry.Description...),
		"Reduced deployment time by 40% through CI automation")
	richer := parser.ParsedSections{Experience: []parser.ExperienceItem{quantified}}

	if scoreExperienceQuality(richer) < scoreExperienceQuality(base) {
		t.Error("adding a quantified bullet should not lower the experience score")
	}
}

func TestFileStructureMonotonic(t *testing.T) {
	text := "Jane Smith\n\nEXPERIENCE\nSoftware Engineer"
	base := parser.ParsedSections{}

	withEmail := parser.ParsedSections{
		Contact: parser.ContactInfo{Email: "jane@example.com"},
	}
	textWithEmail := "Jane Smith\njane@example.com\n\nEXPERIENCE\nSoftware Engineer"

	if scoreFileStructure(textWithEmail, withEmail) < scoreFileStructure(text, base) {
		t.Error("adding an email should not lower the file structure score")
	}
}

func TestScoreExperienceQualityFloor(t *testing.T) {
	if got := scoreExperienceQuality(parser.ParsedSections{}); got != 20 {
		t.Errorf("scoreExperienceQuality(no experience) = %d, want 20", got)
	}
}

func TestScoreSkillsMatchFloor(t *testing.T) {
	if got := scoreSkillsMatch(parser.ParsedSections{}); got != 20 {
		t.Errorf("scoreSkillsMatch(no skills) = %d, want 20", got)
	}
}

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name     string
		sections parser.ParsedSections
		want     string
	}{
		{
			name: "tech resume",
			sections: parser.ParsedSections{
				Skills: []string{"javascript", "react", "docker"},
				Experience: []parser.ExperienceItem{
					{Title: "Software Engineer", Description: []string{"wrote code for the api"}},
				},
			},
			want: "tech",
		},
		{
			name: "marketing resume",
			sections: parser.ParsedSections{
				Skills: []string{"seo", "content strategy"},
				Experience: []parser.ExperienceItem{
					{Title: "Brand Specialist", Description: []string{"ran a social media campaign"}},
				},
			},
			want: "marketing",
		},
		{
			name:     "nothing recognizable",
			sections: parser.ParsedSections{Skills: []string{"juggling"}},
			want:     "general",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectIndustry(tt.sections); got != tt.want {
				t.Errorf("detectIndustry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzeKeywordsMissingCapped(t *testing.T) {
	result := analyzeKeywords("", parser.ParsedSections{})
	if len(result.Missing) > 10 {
		t.Errorf("missing keywords = %d, want at most 10", len(result.Missing))
	}
	if len(result.IndustryKeywords) > 20 {
		t.Errorf("industry keywords = %d, want at most 20", len(result.IndustryKeywords))
	}
	if result.RelevanceScore != 0 {
		t.Errorf("relevanceScore for empty text = %d, want 0", result.RelevanceScore)
	}
}

func TestCheckFormattingTables(t *testing.T) {
	text := "Name\n│├┤│ Skills ││ Python ││\nmore\ntext"
	issues := checkFormatting(text)
	var found bool
	for _, issue := range issues {
		if issue.Type == "tables" {
			found = true
			if issue.Severity != "high" {
				t.Errorf("tables severity = %q, want high", issue.Severity)
			}
		}
	}
	if !found {
		t.Error("expected a tables format issue")
	}
}
