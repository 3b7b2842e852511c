package curriculum

import (
	"reflect"
	"testing"
)

func TestSegment(t *testing.T) {
	document := "# Title\n" +
		"preamble line\n" +
		"## First\n" +
		"first body\n" +
		"#### Not a heading\n" +
		"### Second\n" +
		"second body\n"

	expected := []Section{
		{Title: "First", Body: "## First\nfirst body\n#### Not a heading"},
		{Title: "Second", Body: "### Second\nsecond body\n"},
	}

	got := Segment(document)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestSegmentDropsPreamble(t *testing.T) {
	for _, section := range Segment("intro only\n| Course | a | b | c |\n## Only\nbody") {
		if section.Body != "## Only\nbody" {
			t.Errorf("Expected preamble to be excluded, got %q", section.Body)
		}
	}
}

func TestSegmentRepeatedTitle(t *testing.T) {
	got := Segment("## A\none\n## B\ntwo\n## A\nthree")
	expected := []Section{
		{Title: "A", Body: "## A\nthree"},
		{Title: "B", Body: "## B\ntwo"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestSegmentEmpty(t *testing.T) {
	if got := Segment("no headings at all"); len(got) != 0 {
		t.Errorf("Expected no sections, got %v", got)
	}
}
