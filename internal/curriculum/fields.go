package curriculum

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPrerequisites bounds the prerequisites kept per course.
	MaxPrerequisites = 5
	// MaxTopics bounds the topics kept per section.
	MaxTopics = 10
)

var (
	weeksPattern        = regexp.MustCompile(`(?i)(\d+)(?:-\d+)?\s*weeks?`)
	prerequisitePattern = regexp.MustCompile(`[,;]`)
	topicsPattern       = regexp.MustCompile(`(?is)topics covered[:\s]*(.+?)(?:\n|$)`)
	topicSplitPattern   = regexp.MustCompile(`[,•·\n]`)
)

var topicFillers = map[string]bool{
	"and more": true,
	"more":     true,
	"etc":      true,
}

// ExtractWeeks returns the number of weeks in a duration cell such as "8 weeks" or "4-6 weeks".
// Ranges yield their lower bound. It returns nil when no week count is present.
func ExtractWeeks(duration string) *int {
	m := weeksPattern.FindStringSubmatch(duration)
	if m == nil {
		return nil
	}

	weeks, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &weeks
}

// ExtractPrerequisites splits a prerequisites cell into at most MaxPrerequisites entries.
// Placeholders such as "-" and "none" yield an empty list.
func ExtractPrerequisites(text string) []string {
	prerequisites := []string{}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "-", "none":
		return prerequisites
	}

	for _, piece := range prerequisitePattern.Split(stripMarkup(text), -1) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) <= 2 {
			continue
		}
		prerequisites = append(prerequisites, piece)
		if len(prerequisites) == MaxPrerequisites {
			break
		}
	}

	return prerequisites
}

// ExtractTopics reads the "Topics covered" line of a section and returns at most MaxTopics
// keywords in document order. Sections without the label have no topics.
func ExtractTopics(section string) []string {
	topics := []string{}

	m := topicsPattern.FindStringSubmatch(section)
	if m == nil {
		return topics
	}

	line := strings.ReplaceAll(m[1], "`", "")
	for _, topic := range topicSplitPattern.Split(line, -1) {
		topic = strings.TrimSpace(topic)
		if topic == "" || utf8.RuneCountInString(topic) <= 2 || topicFillers[strings.ToLower(topic)] {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == MaxTopics {
			break
		}
	}

	return topics
}

// ExtractLinkURL returns the target of the first markdown link in text, or "".
func ExtractLinkURL(text string) string {
	m := linkPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[2]
}
