package scoring

import "sort"

// PrioritizedGap is one missing skill with its market demand and learning
// cost. The "critical" priority literal is a legacy tag on learning-path
// entries and is independent of the low/medium/high gap tiers.
type PrioritizedGap struct {
	Skill                  string
	Priority               string
	DemandScore            float64
	Difficulty             int
	EstimatedLearningWeeks int
}

const defaultDifficulty = 3

// Learning difficulty per skill, 1 (trivial) to 5 (hard). Unknown skills get
// the default.
var skillDifficulty = map[string]int{
	"HTML":             1,
	"CSS":              1,
	"Git":              1,
	"JavaScript":       2,
	"Python":           2,
	"React":            2,
	"TypeScript":       3,
	"AWS":              3,
	"Docker":           3,
	"Machine Learning": 4,
	"Kubernetes":       4,
	"Deep Learning":    5,
}

// SkillDifficulty returns the static difficulty tier for a skill.
func SkillDifficulty(skill string) int {
	if d, ok := skillDifficulty[skill]; ok {
		return d
	}
	return defaultDifficulty
}

// NewPrioritizedGap builds a learning-path entry for one missing skill.
func NewPrioritizedGap(skill string, demandScore float64) PrioritizedGap {
	difficulty := SkillDifficulty(skill)
	return PrioritizedGap{
		Skill:                  skill,
		Priority:               "critical",
		DemandScore:            demandScore,
		Difficulty:             difficulty,
		EstimatedLearningWeeks: difficulty * 2,
	}
}

// SortByDemand orders gaps by descending demand score, stable.
func SortByDemand(gaps []PrioritizedGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].DemandScore > gaps[j].DemandScore
	})
}

// LearningPhase is one stage of a structured learning path.
type LearningPhase struct {
	Phase    int
	Duration string
	Focus    string
	Skills   []PrioritizedGap
}

// PartitionPhases splits prioritized gaps into foundation (difficulty <= 2),
// core (== 3) and advanced (>= 4) phases, capped at 3, 3 and 2 entries.
func PartitionPhases(prioritized []PrioritizedGap) []LearningPhase {
	var foundation, core, advanced []PrioritizedGap
	for _, g := range prioritized {
		switch {
		case g.Difficulty <= 2:
			foundation = append(foundation, g)
		case g.Difficulty == 3:
			core = append(core, g)
		default:
			advanced = append(advanced, g)
		}
	}
	return []LearningPhase{
		{Phase: 1, Duration: "1-2 months", Focus: "Foundation Skills", Skills: capSlice(foundation, 3)},
		{Phase: 2, Duration: "2-3 months", Focus: "Core Competencies", Skills: capSlice(core, 3)},
		{Phase: 3, Duration: "3-4 months", Focus: "Advanced Skills", Skills: capSlice(advanced, 2)},
	}
}

func capSlice(in []PrioritizedGap, n int) []PrioritizedGap {
	if in == nil {
		return []PrioritizedGap{}
	}
	if len(in) > n {
		return in[:n]
	}
	return in
}
