package parser

// Canonical section headers recognized as boundaries anywhere in the document.
var allSectionHeaders = []string{
	"SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT", "ABOUT ME", "PROFESSIONAL SUMMARY",
	"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE", "EMPLOYMENT",
	"EMPLOYMENT HISTORY", "WORK HISTORY",
	"EDUCATION", "ACADEMIC", "ACADEMIC BACKGROUND", "QUALIFICATIONS",
	"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "COMPETENCIES",
	"KEY SKILLS", "TECHNOLOGIES", "EXPERTISE",
	"PROJECTS", "PERSONAL PROJECTS", "KEY PROJECTS", "SELECTED PROJECTS",
	"CERTIFICATIONS", "CERTIFICATES", "LICENSES", "CREDENTIALS",
	"AWARDS", "ACHIEVEMENTS",
	"LANGUAGES", "INTERESTS", "HOBBIES",
	"REFERENCES", "PUBLICATIONS",
}

var (
	summaryHeaders = []string{"SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT ME", "PROFESSIONAL SUMMARY"}

	experienceHeaders = []string{
		"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE",
		"EMPLOYMENT HISTORY", "WORK HISTORY",
	}

	educationHeaders = []string{"EDUCATION", "ACADEMIC BACKGROUND", "QUALIFICATIONS"}

	skillsHeaders = []string{
		"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES",
		"KEY SKILLS", "TECHNOLOGIES", "EXPERTISE",
	}

	projectHeaders = []string{"PROJECTS", "PERSONAL PROJECTS", "KEY PROJECTS", "SELECTED PROJECTS"}

	certificationHeaders = []string{"CERTIFICATIONS", "CERTIFICATES", "LICENSES", "CREDENTIALS"}
)

// Technology and soft-skill terms swept for across the whole document,
// independent of whether a skills section was found.
var commonSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "Go", "Rust", "PHP", "Swift",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Rails",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Git", "GitHub", "GitLab",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "GraphQL", "REST API",
	"HTML", "CSS", "SASS", "Tailwind", "Bootstrap", "Material UI",
	"Agile", "Scrum", "Jira", "Confluence", "Figma", "Photoshop",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Data Analysis",
	"SQL", "NoSQL", "Linux", "Windows", "macOS",
}
