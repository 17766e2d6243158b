package extract

import "strings"

type taxonomyGroup struct {
	Category string
	Skills   []string
}

// Curated skill taxonomy used for canonical casing. Lookup order follows
// definition order.
var taxonomy = []taxonomyGroup{
	{"Programming Languages", []string{"Python", "JavaScript", "Java", "TypeScript", "Go", "Rust", "C++", "C#", "Ruby", "PHP"}},
	{"Frontend", []string{"React", "Vue", "Angular", "HTML", "CSS", "Next.js"}},
	{"Backend", []string{"Node.js", "Express", "Django", "Flask", "FastAPI", "Spring", "NestJS"}},
	{"Database", []string{"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch"}},
	{"Cloud & DevOps", []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Git", "CI/CD"}},
	{"Data Science & ML", []string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas"}},
}

// ValidateSkills rewrites taxonomy-known skills to their canonical casing and
// passes unknown entries through unchanged. The taxonomy normalizes, it never
// filters, so the invalid slice stays empty for well-formed input.
func ValidateSkills(skills []string) (valid []string, invalid []string) {
	valid = make([]string, 0, len(skills))
	invalid = make([]string, 0)

	for _, skill := range skills {
		if canonical, ok := canonicalCasing(skill); ok {
			valid = append(valid, canonical)
			continue
		}
		valid = append(valid, skill)
	}
	return valid, invalid
}

func canonicalCasing(skill string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(skill))
	for _, g := range taxonomy {
		for _, known := range g.Skills {
			if strings.ToLower(known) == lower {
				return known, true
			}
		}
	}
	return "", false
}
