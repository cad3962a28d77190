package jobmatch

import "regexp"

var technicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(javascript|typescript|python|java|c\+\+|c#|ruby|go|rust|php|swift|kotlin)\b`),
	regexp.MustCompile(`(?i)\b(react|angular|vue|node\.?js|express|django|flask|spring|rails|\.net)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|jenkins|ci/cd|git|github|gitlab)\b`),
	regexp.MustCompile(`(?i)\b(mongodb|postgresql|mysql|redis|elasticsearch|graphql|rest\s*api)\b`),
	regexp.MustCompile(`(?i)\b(html|css|sass|tailwind|bootstrap|material\s*ui)\b`),
	regexp.MustCompile(`(?i)\b(machine\s*learning|deep\s*learning|tensorflow|pytorch|data\s*science)\b`),
	regexp.MustCompile(`(?i)\b(agile|scrum|kanban|jira|confluence)\b`),
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem-solving", "analytical",
	"management", "collaboration", "creative", "detail-oriented", "self-motivated",
}

var roleTerms = []string{
	"full-stack", "frontend", "backend", "devops", "data engineer", "ml engineer",
	"product manager", "project manager", "business analyst", "qa engineer",
	"senior", "lead", "principal", "architect", "manager", "director",
}

var commonResumeTerms = []string{
	"javascript", "typescript", "python", "java", "react", "angular", "vue",
	"node", "express", "mongodb", "postgresql", "aws", "azure", "docker",
	"kubernetes", "agile", "scrum", "ci/cd", "git",
}

var commonRequiredSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "Go", "Rust",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Spring",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git",
	"SQL", "MongoDB", "PostgreSQL", "Redis",
	"Agile", "Scrum", "CI/CD",
}
