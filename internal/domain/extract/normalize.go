package extract

import "strings"

type normalizationRule struct {
	Variant   string
	Canonical string
}

// Spelling variants collapse to one canonical form. Rules are matched against
// the lower-cased skill in definition order; every canonical form also maps
// to itself through its own lower-cased variant, which keeps Normalize
// idempotent.
var normalizationRules = []normalizationRule{
	{"nest.js", "NestJS"},
	{"nestjs", "NestJS"},
	{"next.js", "Next.js"},
	{"nextjs", "Next.js"},
	{"node.js", "Node.js"},
	{"nodejs", "Node.js"},
	{"react.js", "React"},
	{"reactjs", "React"},
	{"react", "React"},
	{"vue.js", "Vue"},
	{"vuejs", "Vue"},
	{"vue", "Vue"},
	{"golang", "Go"},
	{"go", "Go"},
	{"postgres", "PostgreSQL"},
	{"postgresql", "PostgreSQL"},
	{"k8s", "Kubernetes"},
	{"kubernetes", "Kubernetes"},
	{"ci/cd", "CI/CD"},
}

// Normalize collapses a known spelling variant to its canonical form.
// Unknown skills pass through unchanged.
func Normalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	for _, r := range normalizationRules {
		if r.Variant == lower {
			return r.Canonical
		}
	}
	return skill
}

// canonicalForm folds a raw match to its display form: spelling variants
// collapse first, then the taxonomy fixes letter case. Matches outside both
// tables keep their input casing.
func canonicalForm(skill string) string {
	n := Normalize(skill)
	if c, ok := canonicalCasing(n); ok {
		return c
	}
	return n
}
