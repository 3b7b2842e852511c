// Package curriculum extracts course records from the OSSU Computer Science README.
//
// The pipeline is pure: it segments the document into sections, classifies each heading into
// a Category, reads the section's "Topics covered" line and course table, and synthesizes a
// description per course. It performs no IO and keeps no state between calls.
package curriculum

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// ErrNoDocument is returned when there is no curriculum text to parse.
var ErrNoDocument = errors.New("no curriculum document to parse")

// ParsedCourse is one course row of the curriculum, enriched with its section's topics.
type ParsedCourse struct {
	Title         string   `json:"title" yaml:"title"`
	SourceURL     string   `json:"url" yaml:"url"`
	AnchorURL     string   `json:"ossu_url" yaml:"ossu_url"`
	DurationWeeks *int     `json:"duration_weeks" yaml:"duration_weeks"`
	EffortPerWeek string   `json:"effort_hours_per_week" yaml:"effort_hours_per_week"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
	Category      Category `json:"category" yaml:"category"`
	TopicsCovered []string `json:"topics_covered" yaml:"topics_covered"`
	Description   string   `json:"description" yaml:"description"`
}

// Parse runs the extraction pipeline over a whole README and returns its courses in
// document order. Sections whose heading is not a curriculum category are skipped, as are
// malformed rows.
func Parse(document string) []ParsedCourse {
	all := []ParsedCourse{}

	for _, section := range Segment(document) {
		category, ok := Classify(section.Title)
		if !ok {
			continue
		}
		glog.V(1).Infof("processing section %q -> %s", section.Title, category)

		topics := ExtractTopics(section.Body)
		courses := ParseTable(section.Body, category)
		for _, course := range courses {
			course.TopicsCovered = topics
			course.Description = Describe(course, topics)
			all = append(all, course)
		}

		glog.V(1).Infof("found %d courses in %q", len(courses), section.Title)
	}

	glog.V(1).Infof("total courses parsed: %d", len(all))
	return all
}

// ParseReader reads a README from r and parses it. It fails only when r is nil or cannot be
// read, in which case no courses are returned.
func ParseReader(r io.Reader) ([]ParsedCourse, error) {
	if r == nil {
		return nil, ErrNoDocument
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDocument, err)
	}

	return Parse(string(b)), nil
}
