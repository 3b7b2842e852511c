package curriculum

import "strings"

// Category is one of the fixed OSSU curriculum buckets.
type Category string

const (
	IntroCS             Category = "intro_cs"
	CoreProgramming     Category = "core_programming"
	CoreMath            Category = "core_math"
	CSTools             Category = "cs_tools"
	CoreSystems         Category = "core_systems"
	CoreTheory          Category = "core_theory"
	CoreSecurity        Category = "core_security"
	CoreApplications    Category = "core_applications"
	CoreEthics          Category = "core_ethics"
	AdvancedProgramming Category = "advanced_programming"
	AdvancedSystems     Category = "advanced_systems"
	AdvancedTheory      Category = "advanced_theory"
	AdvancedSecurity    Category = "advanced_security"
	AdvancedMath        Category = "advanced_math"
	FinalProject        Category = "final_project"
)

// Slug is the category as it appears in README anchors, e.g. "core-programming".
func (c Category) Slug() string {
	return strings.ReplaceAll(string(c), "_", "-")
}

type categoryKey struct {
	key      string
	category Category
}

// categoryTable is ordered: substring matching returns the first hit.
var categoryTable = []categoryKey{
	{"intro cs", IntroCS},
	{"core programming", CoreProgramming},
	{"core math", CoreMath},
	{"cs tools", CSTools},
	{"core systems", CoreSystems},
	{"core theory", CoreTheory},
	{"core security", CoreSecurity},
	{"core applications", CoreApplications},
	{"core ethics", CoreEthics},
	{"advanced programming", AdvancedProgramming},
	{"advanced systems", AdvancedSystems},
	{"advanced theory", AdvancedTheory},
	{"advanced information security", AdvancedSecurity},
	{"advanced math", AdvancedMath},
	{"final project", FinalProject},
}

// Categories returns every category the classifier can produce, in table order.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryTable))
	for _, entry := range categoryTable {
		categories = append(categories, entry.category)
	}
	return categories
}

// Classify maps a section heading to its curriculum category. An exact match on the
// lower-cased heading wins; otherwise the first table key contained in the heading is used.
func Classify(title string) (Category, bool) {
	title = strings.ToLower(strings.TrimSpace(title))

	for _, entry := range categoryTable {
		if title == entry.key {
			return entry.category, true
		}
	}

	for _, entry := range categoryTable {
		if strings.Contains(title, entry.key) {
			return entry.category, true
		}
	}

	return "", false
}
