package profile

// Profile describes the person being analyzed. It lives for one request and
// is never persisted.
type Profile struct {
	Skills          []string
	ExperienceYears float64
	CurrentRole     string
	Education       string
	Location        string
}

// SkillSet returns the profile skills as a set.
func (p Profile) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}
