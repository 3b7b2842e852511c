package curriculum

import "strings"

// AnchorBaseURL is the repository the curriculum README lives in. Course anchor links point
// at category headings inside it.
const AnchorBaseURL = "https://github.com/ossu/computer-science"

// AnchorURL returns the link to a category's heading in the curriculum README.
func AnchorURL(category Category) string {
	return AnchorBaseURL + "#" + category.Slug()
}

// ParseTable reads the course tables of one section body. Rows are only accepted after a
// header row whose first cell is "Course" or "Courses"; the header must appear in every
// section. Topics and descriptions are left empty for the caller to fill in.
func ParseTable(body string, category Category) []ParsedCourse {
	courses := []ParsedCourse{}
	tableStarted := false

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "|---") || strings.HasPrefix(line, "| :--") {
			continue
		}
		if !strings.HasPrefix(line, "|") || !strings.Contains(line[1:], "|") {
			continue
		}

		cells := splitRow(line)
		if !tableStarted {
			if len(cells) > 0 && isHeaderCell(cells[0]) {
				tableStarted = true
			}
			continue
		}
		if len(cells) < 4 {
			continue
		}

		title := Normalize(cells[0])
		if title == "" || isHeaderCell(title) {
			continue
		}

		courses = append(courses, ParsedCourse{
			Title:         title,
			SourceURL:     ExtractLinkURL(cells[0]),
			AnchorURL:     AnchorURL(category),
			DurationWeeks: ExtractWeeks(cells[1]),
			EffortPerWeek: cells[2],
			Prerequisites: ExtractPrerequisites(cells[3]),
			Category:      category,
			TopicsCovered: []string{},
		})
	}

	return courses
}

// splitRow returns the trimmed cells between the outer pipes of a table row.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

func isHeaderCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "course", "courses":
		return true
	}
	return false
}
