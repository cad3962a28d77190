package parser

import (
	"regexp"
	"strings"
)

// Heuristic extraction over cleaned resume text. Every function here is a
// pure function of its input and never fails: missing sections simply come
// back empty and are treated as deficiencies by the scoring layers.

var (
	emailRe    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe    = regexp.MustCompile(`\+?\(?[0-9]{1,3}\)?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	websiteRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[\w-]+\.[\w.-]+(?:/[\w.-]*)?`)
	nameRe     = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)

	spacesRe    = regexp.MustCompile(`[ \t]+`)
	manyBlankRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes raw extracted text: line endings, tabs, non-breaking
// spaces and repeated whitespace, keeping line structure intact for the
// section heuristics downstream.
func CleanText(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = spacesRe.ReplaceAllString(s, " ")
	s = manyBlankRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractSections splits resume text into labeled sections. It is total:
// any input, including the empty string, yields a structurally complete
// result.
func ExtractSections(text string) ParsedSections {
	lines := strings.Split(text, "\n")
	return ParsedSections{
		Contact:        extractContact(lines),
		Summary:        extractSummary(lines),
		Experience:     extractExperience(lines),
		Education:      extractEducation(lines),
		Skills:         extractSkills(text, lines),
		Projects:       extractProjects(lines),
		Certifications: extractCertifications(lines),
	}
}

// extractContact scans only the first 10 lines; contact details are assumed
// to sit near the top of the document.
func extractContact(lines []string) ContactInfo {
	head := lines
	if len(head) > 10 {
		head = head[:10]
	}
	block := strings.Join(head, " ")

	var contact ContactInfo
	if m := emailRe.FindString(block); m != "" {
		contact.Email = strings.ToLower(m)
	}
	if m := phoneRe.FindString(block); m != "" {
		contact.Phone = m
	}
	if m := linkedinRe.FindString(block); m != "" {
		contact.LinkedIn = "https://" + m
	}
	if m := githubRe.FindString(block); m != "" {
		contact.GitHub = "https://" + m
	}
	for _, candidate := range websiteRe.FindAllString(block, -1) {
		lower := strings.ToLower(candidate)
		if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") || strings.Contains(candidate, "@") {
			continue
		}
		contact.Website = candidate
		break
	}
	if len(head) > 0 {
		if m := nameRe.FindStringSubmatch(head[0]); m != nil {
			contact.Name = m[1]
		}
	}
	return contact
}

// extractSummary captures text under a summary-style header until the next
// recognized section header or a fully blank gap. Only block lengths in
// (20, 2000) are accepted.
func extractSummary(lines []string) string {
	start := headerIndex(lines, summaryHeaders)
	if start < 0 {
		return ""
	}
	var captured []string
	blanks := 0
	for i := start + 1; i < len(lines); i++ {
		if isAnyHeaderLine(lines[i]) {
			break
		}
		if strings.TrimSpace(lines[i]) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
			continue
		}
		blanks = 0
		captured = append(captured, lines[i])
	}
	summary := strings.TrimSpace(strings.Join(captured, "\n"))
	if len(summary) > 20 && len(summary) < 2000 {
		return summary
	}
	return ""
}

// headerIndex returns the index of the first line that consists solely of one
// of the given header keywords (priority follows keyword order), or -1.
func headerIndex(lines []string, keywords []string) int {
	for _, kw := range keywords {
		for i, line := range lines {
			if isHeaderLine(line, kw) {
				return i
			}
		}
	}
	return -1
}

func isHeaderLine(line, keyword string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimRight(t, ":")
	t = strings.TrimSpace(t)
	return strings.EqualFold(t, keyword)
}

func isAnyHeaderLine(line string) bool {
	for _, kw := range allSectionHeaders {
		if isHeaderLine(line, kw) {
			return true
		}
	}
	return false
}

// sectionLines returns the lines of the first section introduced by one of
// the given headers, bounded by the next recognized header or end of input.
func sectionLines(lines []string, keywords []string) []string {
	start := headerIndex(lines, keywords)
	if start < 0 {
		return nil
	}
	var out []string
	for i := start + 1; i < len(lines); i++ {
		if isAnyHeaderLine(lines[i]) {
			break
		}
		out = append(out, lines[i])
	}
	return out
}

// appendUnique adds value to list unless an equal (case-insensitive) entry is
// already present, preserving insertion order so repeated runs over the same
// input produce identical output.
func appendUnique(list []string, seen map[string]bool, value string) []string {
	key := strings.ToLower(value)
	if seen[key] {
		return list
	}
	seen[key] = true
	return append(list, value)
}
