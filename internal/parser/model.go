package parser

// ContactInfo holds contact details found near the top of a resume.
// Every field is independently optional; an empty string means not found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceItem is a single work-history entry.
type ExperienceItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// EducationItem is a single education entry.
type EducationItem struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location,omitempty"`
	GraduationDate string   `json:"graduationDate,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Details        []string `json:"details,omitempty"`
}

// ProjectItem is a single project entry.
type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// ParsedSections is the structured view of a resume produced by ExtractSections.
// It is a plain value; callers replace it wholesale on re-parse.
type ParsedSections struct {
	Contact        ContactInfo      `json:"contact"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []ExperienceItem `json:"experience"`
	Education      []EducationItem  `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []ProjectItem    `json:"projects"`
	Certifications []string         `json:"certifications"`
}
