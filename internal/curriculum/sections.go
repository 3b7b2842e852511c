package curriculum

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^#{2,3}\s+(.+)$`)

// Section is a "##" or "###" heading together with the raw lines up to the next heading.
// Body starts with the heading line itself.
type Section struct {
	Title string
	Body  string
}

// Segment splits a README into sections in first-occurrence order. Text before the first
// heading belongs to no section. When a heading repeats, the section keeps its original
// position and takes the body of the later occurrence.
func Segment(document string) []Section {
	document = strings.ReplaceAll(document, "\r\n", "\n")

	var (
		sections []Section
		index    = make(map[string]int)
		title    string
		lines    []string
		open     bool
	)

	flush := func() {
		if !open {
			return
		}
		body := strings.Join(lines, "\n")
		if i, ok := index[title]; ok {
			sections[i].Body = body
			return
		}
		index[title] = len(sections)
		sections = append(sections, Section{Title: title, Body: body})
	}

	for _, line := range strings.Split(document, "\n") {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			title = strings.TrimSpace(m[1])
			lines = []string{line}
			open = true
			continue
		}
		if open {
			lines = append(lines, line)
		}
	}
	flush()

	return sections
}
