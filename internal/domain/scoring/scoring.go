package scoring

import (
	"fmt"
	"math"
	"sort"

	"techcareer/internal/domain/job"
)

const (
	skillWeight      = 0.7
	experienceWeight = 0.3

	// Experience proximity decays linearly and bottoms out at a 10-year gap.
	experienceSpreadYears = 10.0
)

// RoleScore ranks one role title against a profile.
type RoleScore struct {
	Role           string
	MatchScore     float64
	AvgSalary      float64
	RequiredSkills []string
	Count          int
}

// SkillGap lists what a target role requires that the profile lacks.
type SkillGap struct {
	Role          string
	MissingSkills []string
	GapCount      int
	Priority      string
}

// SkillMatch is the fraction of required skills the profile covers.
func SkillMatch(required, profile map[string]struct{}) float64 {
	if len(required) == 0 {
		return 0
	}
	matched := 0
	for s := range required {
		if _, ok := profile[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

// ExperienceMatch scores proximity between required and actual years,
// clamped at zero for deltas beyond the spread.
func ExperienceMatch(requiredYears, actualYears float64) float64 {
	m := 1.0 - math.Abs(requiredYears-actualYears)/experienceSpreadYears
	if m < 0 {
		return 0
	}
	return m
}

// TotalScore is the weighted composite of skill overlap and experience
// proximity.
func TotalScore(skillMatch, experienceMatch float64) float64 {
	return skillMatch*skillWeight + experienceMatch*experienceWeight
}

// ScoreRoles scores every record with a non-empty skill set against the
// profile and aggregates per title. The per-title match score is the last
// per-record score computed for that title, not an average; ranking keeps
// that semantic deliberately. Average salary is the mean over records that
// carry one. Output is stable-sorted by descending score.
func ScoreRoles(records []job.Record, profileSkills []string, experienceYears float64) []RoleScore {
	profile := make(map[string]struct{}, len(profileSkills))
	for _, s := range profileSkills {
		profile[s] = struct{}{}
	}

	type accum struct {
		score       float64
		salarySum   float64
		salaryCount int
		skills      []string
		count       int
	}

	order := make([]string, 0)
	byTitle := make(map[string]*accum)

	for _, rec := range records {
		required := rec.SkillSet()
		if len(required) == 0 {
			continue
		}

		score := TotalScore(
			SkillMatch(required, profile),
			ExperienceMatch(rec.ExperienceRequired, experienceYears),
		)

		acc, ok := byTitle[rec.Title]
		if !ok {
			acc = &accum{}
			byTitle[rec.Title] = acc
			order = append(order, rec.Title)
		}

		acc.score = score
		acc.skills = rec.RequiredSkills
		acc.count++
		if rec.Salary != nil {
			acc.salarySum += *rec.Salary
			acc.salaryCount++
		}
	}

	out := make([]RoleScore, 0, len(order))
	for _, title := range order {
		acc := byTitle[title]
		avg := 0.0
		if acc.salaryCount > 0 {
			avg = acc.salarySum / float64(acc.salaryCount)
		}
		out = append(out, RoleScore{
			Role:           title,
			MatchScore:     acc.score,
			AvgSalary:      avg,
			RequiredSkills: acc.skills,
			Count:          acc.count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// AnalyzeGaps computes missing skills per target role, emitting an entry
// only when something is missing. Missing skills keep the role's skill
// order.
func AnalyzeGaps(currentSkills []string, targetRoles []RoleScore) []SkillGap {
	current := make(map[string]struct{}, len(currentSkills))
	for _, s := range currentSkills {
		current[s] = struct{}{}
	}

	gaps := make([]SkillGap, 0, len(targetRoles))
	for _, role := range targetRoles {
		missing := make([]string, 0)
		seen := make(map[string]struct{})
		for _, s := range role.RequiredSkills {
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			if _, ok := current[s]; !ok {
				missing = append(missing, s)
			}
		}
		if len(missing) == 0 {
			continue
		}
		gaps = append(gaps, SkillGap{
			Role:          role.Role,
			MissingSkills: missing,
			GapCount:      len(missing),
			Priority:      GapPriority(len(missing)),
		})
	}
	return gaps
}

// GapPriority tiers a gap by its size.
func GapPriority(gapCount int) string {
	switch {
	case gapCount <= 2:
		return "low"
	case gapCount <= 5:
		return "medium"
	default:
		return "high"
	}
}

// EstimateLearningTime buckets gapCount*3 weeks into whole months.
func EstimateLearningTime(gapCount int) string {
	weeks := gapCount * 3
	if weeks <= 4 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", weeks/4)
}
