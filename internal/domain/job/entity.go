package job

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single job posting as ingested by the external collector.
// The analytics core only ever reads records; writes happen in cmd/seed or
// outside this service entirely.
type Record struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Location           string
	Description        string
	RequiredSkills     []string
	ExperienceRequired float64
	Salary             *float64
	PostedAt           time.Time
	Source             string
}

// SkillSet returns the record's required skills as a set. Records with no
// known skills yield an empty, non-nil map.
func (r Record) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.RequiredSkills))
	for _, s := range r.RequiredSkills {
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// SalaryPoint is a (month, salary) observation used by salary trend grouping.
type SalaryPoint struct {
	PostedAt time.Time
	Salary   float64
}
