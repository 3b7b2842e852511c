package curriculum

import (
	"regexp"
	"strings"
)

var (
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	emphasisPattern   = regexp.MustCompile(`\*{2,}`)
	underscorePattern = regexp.MustCompile(`_{2,}`)
	codeSpanPattern   = regexp.MustCompile("`[^`]*`")
	backtickPattern   = regexp.MustCompile("`+")
	whitespacePattern = regexp.MustCompile(`\s+`)
	markupPattern     = regexp.MustCompile("[*_`#]")

	// noisePatterns are labels and breadcrumbs copied from the README that carry no
	// information once the text is pulled out of its section.
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)topics\s+covered\s*:`),
		regexp.MustCompile(`(?i)computer\s+science\s*•`),
	}
)

// Normalize strips markdown decoration from a fragment of README text and returns plain,
// single-spaced text. Links are replaced by their label, bold markers, underscore runs and
// code spans are removed, and known noise phrases are dropped.
//
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(text string) string {
	for {
		next := normalizeOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func normalizeOnce(text string) string {
	if text == "" {
		return ""
	}

	cleaned := linkPattern.ReplaceAllString(text, "$1")
	cleaned = emphasisPattern.ReplaceAllString(cleaned, "")
	cleaned = underscorePattern.ReplaceAllString(cleaned, "")
	cleaned = codeSpanPattern.ReplaceAllString(cleaned, "")
	cleaned = backtickPattern.ReplaceAllString(cleaned, "")
	for _, p := range noisePatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

// stripMarkup replaces links with their label and deletes single formatting characters
// while keeping the words they wrap, e.g. "`Python`" becomes "Python".
func stripMarkup(text string) string {
	cleaned := linkPattern.ReplaceAllString(text, "$1")
	cleaned = markupPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
