package flaws

import (
	"strings"
	"testing"

	"ats-backend/internal/ats"
	"ats-backend/internal/parser"
)

func TestAnalyzeEmptyResume(t *testing.T) {
	result := Analyze("", parser.ParsedSections{}, ats.AnalysisResult{})

	if len(result.ApprovalTips) != 14 {
		t.Fatalf("approval tips = %d, want 14", len(result.ApprovalTips))
	}
	if result.OverallReadiness != "not_ready" {
		t.Errorf("overallReadiness = %q, want not_ready", result.OverallReadiness)
	}
	if result.ReadinessScore < 0 || result.ReadinessScore > 100 {
		t.Errorf("readinessScore = %d, out of range", result.ReadinessScore)
	}

	titles := map[string]bool{}
	for _, flaw := range result.Flaws {
		titles[flaw.Title] = true
	}
	for _, want := range []string{
		"Missing Email Address",
		"Missing Phone Number",
		"No Work Experience Section",
		"No Skills Section",
		"Insufficient Text Content Detected",
		"Missing or Weak Professional Summary",
		"Insufficient Skills Listed",
	} {
		if !titles[want] {
			t.Errorf("expected flaw %q", want)
		}
	}

	for _, flaw := range result.Flaws {
		if flaw.Title == "Insufficient Skills Listed" && !strings.Contains(flaw.Description, "Only 0 skills") {
			t.Errorf("skills flaw description = %q, want zero count", flaw.Description)
		}
	}
}

func TestAnalyzeStrongResume(t *testing.T) {
	sections := parser.ParsedSections{
		Contact: parser.ContactInfo{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Phone:    "555-123-4567",
			LinkedIn: "linkedin.com/in/janesmith",
		},
		Summary: "Results-driven software engineer with 8 years of experience building scalable distributed systems for millions of users.",
		Experience: []parser.ExperienceItem{
			{
				Title:     "Senior Software Engineer",
				Company:   "Acme Corp",
				StartDate: "Jan 2020",
				Current:   true,
				Description: []string{
					"Led a team of 8 engineers across three product lines",
					"Increased throughput by 45% after redesigning the ingestion pipeline",
					"Developed internal tooling adopted by 200 users",
				},
			},
		},
		Education: []parser.EducationItem{
			{Degree: "BS Computer Science", Institution: "State University", GraduationDate: "2016"},
		},
		Skills: []string{"Go", "Python", "AWS", "Docker", "Kubernetes", "SQL", "Leadership", "Communication"},
	}
	analysis := ats.AnalysisResult{
		Scores: ats.ScoreBreakdown{
			KeywordRelevance:  75,
			SectionStructure:  90,
			ExperienceQuality: 80,
		},
		Keywords: ats.KeywordAnalysis{
			Found: []string{"software", "development", "api", "cloud", "agile", "engineering", "testing", "deployment", "architecture", "database"},
		},
	}
	text := wordsOfLength(500)

	result := Analyze(text, sections, analysis)

	for _, flaw := range result.Flaws {
		if flaw.Category == "critical" {
			t.Errorf("unexpected critical flaw %q", flaw.Title)
		}
	}
	if result.OverallReadiness != "ready" {
		t.Errorf("overallReadiness = %q (score %d), want ready", result.OverallReadiness, result.ReadinessScore)
	}

	implemented := 0
	for _, tip := range result.ApprovalTips {
		if tip.Implemented {
			implemented++
		}
	}
	if implemented < 12 {
		t.Errorf("implemented tips = %d, want at least 12", implemented)
	}
}

func TestReadinessTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "ready"},
		{80, "ready"},
		{79, "needs_work"},
		{50, "needs_work"},
		{49, "not_ready"},
		{0, "not_ready"},
	}
	for _, tt := range tests {
		if got := readinessTier(tt.score); got != tt.want {
			t.Errorf("readinessTier(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestReadinessScoreDeductions(t *testing.T) {
	tips := []ApprovalTip{{Implemented: true}, {Implemented: true}}

	noFlaws := readinessScore(nil, tips)
	if noFlaws != 100 {
		t.Errorf("readinessScore with no flaws and full tips = %d, want 100", noFlaws)
	}

	withCritical := readinessScore([]Flaw{{Category: "critical"}}, tips)
	if withCritical >= noFlaws {
		t.Errorf("a critical flaw should lower the score: %d >= %d", withCritical, noFlaws)
	}

	withMinor := readinessScore([]Flaw{{Category: "minor"}}, tips)
	if withMinor <= withCritical {
		t.Errorf("minor flaw should cost less than critical: %d <= %d", withMinor, withCritical)
	}
}

func TestFormatIssueAggregation(t *testing.T) {
	analysis := ats.AnalysisResult{
		FormatIssues: []ats.FormatIssue{
			{Type: "tables", Description: "Tables detected", Severity: "high"},
			{Type: "too_short", Description: "Too short", Severity: "high"},
			{Type: "excessive_caps", Description: "Caps", Severity: "low"},
		},
	}

	result := Analyze("", parser.ParsedSections{}, analysis)

	count := 0
	for _, flaw := range result.Flaws {
		if flaw.Title == "Formatting Issues Detected" {
			count++
			if flaw.Description != "Tables detected; Too short" {
				t.Errorf("aggregated description = %q", flaw.Description)
			}
		}
	}
	if count != 1 {
		t.Errorf("formatting flaws = %d, want exactly 1", count)
	}

	for _, tip := range result.ApprovalTips {
		if tip.Title == "Avoid Tables, Graphics, and Images" && tip.Implemented {
			t.Error("tables tip should not be implemented when a tables issue exists")
		}
	}
}

func wordsOfLength(n int) string {
	words := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		words = append(words, "example "...)
	}
	return string(words)
}
