package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"techcareer/internal/domain/profile"
	"techcareer/internal/domain/salary"
	"techcareer/internal/domain/scoring"
	"techcareer/internal/pkg/stats"
	"techcareer/internal/repository"
)

const (
	maxRecommendedRoles = 10
	gapAnalysisRoles    = 5
	learningPathSkills  = 10
	trajectoryYears     = 3

	roleRequirementsSampleLimit = 1000
	roleRequirementsTopSkills   = 15

	// Defaults when the profile leaves role/location blank.
	fallbackRole     = "Software Engineer"
	fallbackLocation = "Remote"
)

type SalaryBand struct {
	Predicted float64
	Min       float64
	Max       float64
}

type TrajectoryStep struct {
	Year            int
	Role            string
	SkillsCount     int
	EstimatedSalary SalaryBand
}

type CareerAnalysis struct {
	RecommendedRoles []scoring.RoleScore
	SkillGaps        []scoring.SkillGap
	SalaryRange      SalaryBand
	GrowthTrajectory []TrajectoryStep
	LearningPath     []string
}

type RoleRequirements struct {
	Role          string
	Skills        []string
	AvgSalary     float64
	AvgExperience float64
	SampleSize    int
}

type RoleComparison struct {
	Role            string
	MatchPercentage float64
	Requirements    RoleRequirements
	SkillGap        []string
}

type CareerUsecase interface {
	AnalyzeCareerPath(ctx context.Context, p profile.Profile) (CareerAnalysis, error)
	CompareRoles(ctx context.Context, p profile.Profile, targetRoles []string) ([]RoleComparison, error)
	GetRoleRequirements(ctx context.Context, roleName string) (RoleRequirements, error)
}

type Career struct {
	records repository.JobRecordRepository
}

func NewCareerUsecase(records repository.JobRecordRepository) *Career {
	return &Career{records: records}
}

// AnalyzeCareerPath runs the full pipeline: role matching, gap analysis,
// salary banding, growth trajectory and a learning path.
func (u *Career) AnalyzeCareerPath(ctx context.Context, p profile.Profile) (CareerAnalysis, error) {
	if p.ExperienceYears < 0 {
		return CareerAnalysis{}, ErrInvalidInput
	}

	records, err := u.records.ListWithSkills(ctx)
	if err != nil {
		return CareerAnalysis{}, fmt.Errorf("%w: list records: %v", ErrInternal, err)
	}

	roles := scoring.ScoreRoles(records, p.Skills, p.ExperienceYears)
	if len(roles) > maxRecommendedRoles {
		roles = roles[:maxRecommendedRoles]
	}

	gapTargets := roles
	if len(gapTargets) > gapAnalysisRoles {
		gapTargets = gapTargets[:gapAnalysisRoles]
	}
	gaps := scoring.AnalyzeGaps(p.Skills, gapTargets)

	return CareerAnalysis{
		RecommendedRoles: roles,
		SkillGaps:        gaps,
		SalaryRange:      predictBand(p.Skills, p.ExperienceYears, p.Location),
		GrowthTrajectory: growthTrajectory(p, roles),
		LearningPath:     learningPath(gaps),
	}, nil
}

// CompareRoles scores the profile against each named role's market
// requirements. Roles with no market data are skipped, not errored.
func (u *Career) CompareRoles(ctx context.Context, p profile.Profile, targetRoles []string) ([]RoleComparison, error) {
	if len(targetRoles) == 0 {
		return nil, ErrInvalidInput
	}

	have := p.SkillSet()

	out := make([]RoleComparison, 0, len(targetRoles))
	for _, role := range targetRoles {
		reqs, err := u.GetRoleRequirements(ctx, role)
		if err != nil {
			if errors.Is(err, ErrNoMarketData) {
				continue
			}
			return nil, err
		}

		matched := 0
		gap := make([]string, 0)
		for _, s := range reqs.Skills {
			if _, ok := have[s]; ok {
				matched++
			} else {
				gap = append(gap, s)
			}
		}

		denom := len(reqs.Skills)
		if denom == 0 {
			denom = 1
		}

		out = append(out, RoleComparison{
			Role:            role,
			MatchPercentage: float64(matched) / float64(denom) * 100,
			Requirements:    reqs,
			SkillGap:        gap,
		})
	}
	return out, nil
}

// GetRoleRequirements summarizes what the market asks of a role: the most
// frequent skills, mean salary and mean required experience.
func (u *Career) GetRoleRequirements(ctx context.Context, roleName string) (RoleRequirements, error) {
	roleName = strings.TrimSpace(roleName)
	if roleName == "" {
		return RoleRequirements{}, ErrInvalidInput
	}

	records, err := u.records.ListByRole(ctx, roleName, roleRequirementsSampleLimit)
	if err != nil {
		return RoleRequirements{}, fmt.Errorf("%w: list by role: %v", ErrInternal, err)
	}
	if len(records) == 0 {
		return RoleRequirements{}, ErrNoMarketData
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	salaries := make([]float64, 0, len(records))
	experience := make([]float64, 0, len(records))

	for _, rec := range records {
		for _, s := range rec.RequiredSkills {
			if s == "" {
				continue
			}
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
		if rec.Salary != nil {
			salaries = append(salaries, *rec.Salary)
		}
		experience = append(experience, rec.ExperienceRequired)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > roleRequirementsTopSkills {
		order = order[:roleRequirementsTopSkills]
	}

	return RoleRequirements{
		Role:          roleName,
		Skills:        order,
		AvgSalary:     stats.Mean(salaries),
		AvgExperience: stats.Mean(experience),
		SampleSize:    len(records),
	}, nil
}

func predictBand(skills []string, years float64, location string) SalaryBand {
	if location == "" {
		location = fallbackLocation
	}
	predicted := salary.Predict(skills, years, fallbackRole, location)
	return SalaryBand{
		Predicted: predicted,
		Min:       round2(predicted * 0.85),
		Max:       round2(predicted * 1.15),
	}
}

// growthTrajectory projects the next three years: two new skills a year,
// salary re-estimated at each step.
func growthTrajectory(p profile.Profile, recommended []scoring.RoleScore) []TrajectoryStep {
	steps := make([]TrajectoryStep, 0, trajectoryYears+1)

	steps = append(steps, TrajectoryStep{
		Year:            0,
		Role:            "Current",
		SkillsCount:     len(p.Skills),
		EstimatedSalary: predictBand(p.Skills, p.ExperienceYears, ""),
	})

	for year := 1; year <= trajectoryYears; year++ {
		role := "Projected"
		if len(recommended) > 0 {
			idx := year - 1
			if idx >= len(recommended) {
				idx = len(recommended) - 1
			}
			role = recommended[idx].Role
		}
		steps = append(steps, TrajectoryStep{
			Year:            year,
			Role:            role,
			SkillsCount:     len(p.Skills) + year*2,
			EstimatedSalary: predictBand(p.Skills, p.ExperienceYears+float64(year), ""),
		})
	}
	return steps
}

// learningPath ranks missing skills by how many target roles demand them.
func learningPath(gaps []scoring.SkillGap) []string {
	order := make([]string, 0)
	freq := make(map[string]int)
	for _, gap := range gaps {
		for _, s := range gap.MissingSkills {
			if _, seen := freq[s]; !seen {
				order = append(order, s)
			}
			freq[s]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > learningPathSkills {
		order = order[:learningPathSkills]
	}
	return order
}
