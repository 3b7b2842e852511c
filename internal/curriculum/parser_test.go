package curriculum

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParse(t *testing.T) {
	courses := Parse(sampleReadme)
	if len(courses) != 2 {
		t.Fatalf("Expected 2 courses, got %d: %#v", len(courses), courses)
	}

	expectedTopics := []string{"functional programming", "design for testing", "program requirements"}
	for _, c := range courses {
		if c.Category != CoreProgramming {
			t.Errorf("Expected category %q, got %q", CoreProgramming, c.Category)
		}
		if !reflect.DeepEqual(c.TopicsCovered, expectedTopics) {
			t.Errorf("Expected topics %v, got %v", expectedTopics, c.TopicsCovered)
		}
	}

	if courses[0].Title != "How to Code - Simple Data" || courses[1].Title != "Programming Languages, Part A" {
		t.Errorf("Expected courses in row order, got %q and %q", courses[0].Title, courses[1].Title)
	}

	expectedDescription := "Learn functional programming, design for testing, program requirements and more " +
		"in this comprehensive course. This 7-week course requires 8-10 hours/week and is part of the " +
		"OSSU Computer Science curriculum."
	if courses[0].Description != expectedDescription {
		t.Errorf("Expected description %q, got %q", expectedDescription, courses[0].Description)
	}

	if !reflect.DeepEqual(courses[1].Prerequisites, []string{"How to Code", "Calculus"}) {
		t.Errorf("Expected prerequisites [How to Code Calculus], got %v", courses[1].Prerequisites)
	}
	if courses[1].AnchorURL != "https://github.com/ossu/computer-science#core-programming" {
		t.Errorf("Unexpected anchor URL %q", courses[1].AnchorURL)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	first := Parse(sampleReadme)
	second := Parse(sampleReadme)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output across runs")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	courses := Parse("")
	if courses == nil || len(courses) != 0 {
		t.Errorf("Expected an empty course list, got %v", courses)
	}
}

func TestParseReader(t *testing.T) {
	courses, err := ParseReader(strings.NewReader(sampleReadme))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("Expected 2 courses, got %d", len(courses))
	}
}

func TestParseReaderFailures(t *testing.T) {
	if _, err := ParseReader(nil); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Expected ErrNoDocument for a nil reader, got %v", err)
	}

	courses, err := ParseReader(iotest.ErrReader(errors.New("connection reset")))
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("Expected ErrNoDocument for a failing reader, got %v", err)
	}
	if courses != nil {
		t.Errorf("Expected no partial results, got %v", courses)
	}
}
