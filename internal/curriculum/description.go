package curriculum

import (
	"fmt"
	"strings"
)

// Describe composes the catalogue description of a course from its section topics and its
// duration and effort. The result is passed through Normalize.
func Describe(course ParsedCourse, topics []string) string {
	lead := topics
	if len(lead) > 3 {
		lead = lead[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Learn %s and more in this comprehensive course.", strings.Join(lead, ", "))

	if course.DurationWeeks != nil {
		fmt.Fprintf(&b, " This %d-week course", *course.DurationWeeks)
		if course.EffortPerWeek != "" {
			fmt.Fprintf(&b, " requires %s", course.EffortPerWeek)
		}
		b.WriteString(" and is part of the OSSU Computer Science curriculum.")
	}

	return Normalize(b.String())
}
