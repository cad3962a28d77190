package parser

import (
	"regexp"
	"strings"
)

var (
	entryStartRe   = regexp.MustCompile(`^[A-Z][a-z]+.*(\d{4}|Present|Current)`)
	dateRangeRe    = regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–—]\s*(\w+\s+\d{4}|Present|Current)`)
	currentRe      = regexp.MustCompile(`(?i)present|current`)
	titleRe        = regexp.MustCompile(`^([A-Z][^|@\d]*?)(\s*[-–|@]|\s*\d{4}|$)`)
	companyRe      = regexp.MustCompile(`^([^|@\d]+?)(\s*[-–|]|$)`)
	bulletMarkerRe = regexp.MustCompile(`^[•\-*]\s*`)
	capitalLineRe  = regexp.MustCompile(`^[A-Z]`)

	degreeRe   = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctor|Associate|B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?|MBA|B\.?Tech|M\.?Tech)[^,\n]*`)
	schoolRe   = regexp.MustCompile(`(?i)university|college|institute|school`)
	yearRe     = regexp.MustCompile(`\d{4}`)
	yearTailRe = regexp.MustCompile(`\d{4}.*$`)
	gpaRe      = regexp.MustCompile(`(?i)(?:GPA|CGPA)[\s:]*(\d+\.?\d*)`)

	skillSplitRe  = regexp.MustCompile(`[,;|•\-]`)
	letterStartRe = regexp.MustCompile(`^[A-Za-z]`)

	projectTechRe = regexp.MustCompile(`(?i)(?:Technologies?|Stack|Built with)[\s:]+([^\n]+)`)
	projectNameRe = regexp.MustCompile(`[-–|:].*$`)
	linkRe        = regexp.MustCompile(`https?://\S+`)
)

func extractExperience(lines []string) []ExperienceItem {
	section := sectionLines(lines, experienceHeaders)
	if section == nil {
		return nil
	}

	var experiences []ExperienceItem
	for _, block := range splitEntries(section, entryStartRe) {
		if len(strings.TrimSpace(strings.Join(block, "\n"))) < 20 {
			continue
		}
		entryLines := nonEmpty(block)
		if len(entryLines) == 0 {
			continue
		}

		var exp ExperienceItem
		first := entryLines[0]

		if m := dateRangeRe.FindStringSubmatch(first); m != nil {
			exp.StartDate = m[1]
			exp.EndDate = m[2]
			exp.Current = currentRe.MatchString(m[2])
		}
		if m := titleRe.FindStringSubmatch(first); m != nil {
			exp.Title = strings.TrimSpace(m[1])
		}
		if len(entryLines) > 1 {
			if m := companyRe.FindStringSubmatch(entryLines[1]); m != nil {
				exp.Company = strings.TrimSpace(m[1])
			}
		}
		for i := 2; i < len(entryLines); i++ {
			line := strings.TrimSpace(entryLines[i])
			if len(line) > 10 && (bulletMarkerRe.MatchString(line) || capitalLineRe.MatchString(line)) {
				exp.Description = append(exp.Description, bulletMarkerRe.ReplaceAllString(line, ""))
			}
		}

		if exp.Title != "" || exp.Company != "" {
			experiences = append(experiences, exp)
		}
	}
	return experiences
}

func extractEducation(lines []string) []EducationItem {
	section := sectionLines(lines, educationHeaders)
	if section == nil {
		return nil
	}

	var education []EducationItem
	for _, block := range splitEntries(section, capitalLineRe) {
		joined := strings.Join(block, "\n")
		if len(strings.TrimSpace(joined)) < 10 {
			continue
		}
		entryLines := nonEmpty(block)
		if len(entryLines) == 0 {
			continue
		}

		var edu EducationItem
		if m := degreeRe.FindString(entryLines[0]); m != "" {
			edu.Degree = strings.TrimSpace(m)
		}
		for _, line := range entryLines {
			if schoolRe.MatchString(line) {
				edu.Institution = strings.TrimSpace(yearTailRe.ReplaceAllString(line, ""))
				break
			}
		}
		if m := yearRe.FindString(joined); m != "" {
			edu.GraduationDate = m
		}
		if m := gpaRe.FindStringSubmatch(joined); m != nil {
			edu.GPA = m[1]
		}

		if edu.Degree != "" || edu.Institution != "" {
			education = append(education, edu)
		}
	}
	return education
}

// extractSkills is two-pronged: tokens from a dedicated skills section, plus
// a sweep of the whole document against the common-skill table. Results keep
// first-seen order.
func extractSkills(text string, lines []string) []string {
	var skills []string
	seen := make(map[string]bool)

	for _, line := range sectionLines(lines, skillsHeaders) {
		for _, item := range skillSplitRe.Split(line, -1) {
			cleaned := strings.TrimSpace(item)
			if len(cleaned) >= 2 && len(cleaned) <= 40 && letterStartRe.MatchString(cleaned) {
				skills = appendUnique(skills, seen, cleaned)
			}
		}
	}

	lowerText := strings.ToLower(text)
	for _, skill := range commonSkills {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			skills = appendUnique(skills, seen, skill)
		}
	}
	return skills
}

func extractProjects(lines []string) []ProjectItem {
	section := sectionLines(lines, projectHeaders)
	if section == nil {
		return nil
	}

	var projects []ProjectItem
	for _, block := range splitEntries(section, capitalLineRe) {
		joined := strings.Join(block, "\n")
		if len(strings.TrimSpace(joined)) < 20 {
			continue
		}
		entryLines := nonEmpty(block)
		if len(entryLines) == 0 {
			continue
		}

		project := ProjectItem{
			Name:        strings.TrimSpace(projectNameRe.ReplaceAllString(entryLines[0], "")),
			Description: strings.TrimSpace(strings.Join(entryLines[1:], " ")),
		}
		if m := projectTechRe.FindStringSubmatch(joined); m != nil {
			for _, tech := range regexp.MustCompile(`[,;|]`).Split(m[1], -1) {
				if t := strings.TrimSpace(tech); t != "" {
					project.Technologies = append(project.Technologies, t)
				}
			}
		}
		if m := linkRe.FindString(joined); m != "" {
			project.Link = m
		}

		if project.Name != "" {
			projects = append(projects, project)
		}
	}
	return projects
}

func extractCertifications(lines []string) []string {
	var certs []string
	for _, line := range sectionLines(lines, certificationHeaders) {
		cleaned := strings.TrimSpace(bulletMarkerRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if len(cleaned) > 5 && len(cleaned) < 200 {
			certs = append(certs, cleaned)
		}
	}
	return certs
}

// splitEntries groups lines into blocks, starting a new block whenever a line
// matches the boundary pattern. Content before the first boundary forms the
// leading block.
func splitEntries(lines []string, boundary *regexp.Regexp) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if boundary.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
