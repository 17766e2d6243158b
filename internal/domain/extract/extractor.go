package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Result holds the skills recognized in one piece of text.
type Result struct {
	Technical []string
	Soft      []string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract parses free text into recognized technical and soft skills.
// Technical matches dedupe case-insensitively on their canonical form, so
// mixed-case mentions of one skill yield a single entry and the output order
// never depends on how the input was cased. No match is a normal result:
// both slices come back empty, never nil.
func Extract(text string) Result {
	text = preprocess(text)

	technical := make(map[string]string)
	for _, cp := range technicalPatterns {
		for _, m := range cp.re.FindAllString(text, -1) {
			display := canonicalForm(m)
			key := strings.ToLower(display)
			if _, seen := technical[key]; !seen {
				technical[key] = display
			}
		}
	}

	soft := make(map[string]struct{})
	for _, sp := range softSkillPatterns {
		if sp.re.MatchString(text) {
			soft[titleCase(sp.Phrase)] = struct{}{}
		}
	}

	return Result{
		Technical: sortedValues(technical),
		Soft:      sortedKeys(soft),
	}
}

// preprocess collapses runs of whitespace so multi-line descriptions match
// multi-word patterns.
func preprocess(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortedValues orders by the lower-cased key and emits the display forms, so
// two casings of one skill sort identically.
func sortedValues(set map[string]string) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, set[k])
	}
	return out
}

// titleCase upper-cases the first letter of every space- or hyphen-separated
// word ("self-starter" -> "Self-Starter").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-':
			upperNext = true
			b.WriteRune(r)
		case upperNext:
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
