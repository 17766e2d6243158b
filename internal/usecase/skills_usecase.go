package usecase

import (
	"context"
	"fmt"
	"strings"

	"techcareer/internal/domain/extract"
	"techcareer/internal/domain/scoring"
	"techcareer/internal/repository"
)

const roleSkillSampleLimit = 100

// Required skills are those appearing in at least this share of sampled
// records for a role.
const requiredSkillShare = 0.6

type ExtractionCounts struct {
	Technical int
	Soft      int
	Total     int
}

type ExtractionResult struct {
	TechnicalSkills []string
	SoftSkills      []string
	Counts          ExtractionCounts
}

type GapAnalysis struct {
	TargetRole              string
	MatchPercentage         float64
	MatchingSkills          []string
	CriticalGaps            []string
	PrioritizedLearningPath []scoring.PrioritizedGap
	EstimatedTimeToReady    string
}

type LearningPath struct {
	TargetRole         string
	CurrentMatch       float64
	Phases             []scoring.LearningPhase
	TotalEstimatedTime string
}

type ValidationResult struct {
	ValidSkills   []string
	InvalidSkills []string
}

type SkillsUsecase interface {
	ExtractSkills(ctx context.Context, description string) (ExtractionResult, error)
	AnalyzeGap(ctx context.Context, currentSkills []string, targetRole string, experienceYears float64) (GapAnalysis, error)
	GenerateLearningPath(ctx context.Context, currentSkills []string, targetRole string, experienceYears float64) (LearningPath, error)
	ValidateSkills(skills []string) ValidationResult
}

type Skills struct {
	records repository.JobRecordRepository
}

func NewSkillsUsecase(records repository.JobRecordRepository) *Skills {
	return &Skills{records: records}
}

// ExtractSkills runs the extractor over a job description and canonicalizes
// the technical matches through the taxonomy. Empty text is a valid input
// with an empty result.
func (u *Skills) ExtractSkills(ctx context.Context, description string) (ExtractionResult, error) {
	_ = ctx

	res := extract.Extract(description)
	valid, _ := extract.ValidateSkills(res.Technical)

	return ExtractionResult{
		TechnicalSkills: valid,
		SoftSkills:      res.Soft,
		Counts: ExtractionCounts{
			Technical: len(valid),
			Soft:      len(res.Soft),
			Total:     len(valid) + len(res.Soft),
		},
	}, nil
}

// AnalyzeGap compares the current skill set against what the market demands
// for the target role.
func (u *Skills) AnalyzeGap(ctx context.Context, currentSkills []string, targetRole string, experienceYears float64) (GapAnalysis, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return GapAnalysis{}, ErrInvalidInput
	}
	if experienceYears < 0 {
		return GapAnalysis{}, ErrInvalidInput
	}

	required, err := u.roleSkills(ctx, targetRole)
	if err != nil {
		return GapAnalysis{}, fmt.Errorf("%w: role skills: %v", ErrInternal, err)
	}

	current := make(map[string]struct{}, len(currentSkills))
	for _, s := range currentSkills {
		current[s] = struct{}{}
	}

	matching := make([]string, 0)
	gaps := make([]string, 0)
	for _, s := range required {
		if _, ok := current[s]; ok {
			matching = append(matching, s)
		} else {
			gaps = append(gaps, s)
		}
	}

	matchPct := 0.0
	if len(required) > 0 {
		matchPct = float64(len(matching)) / float64(len(required)) * 100
	}

	prioritized, err := u.prioritizeGaps(ctx, gaps, targetRole)
	if err != nil {
		return GapAnalysis{}, fmt.Errorf("%w: prioritize gaps: %v", ErrInternal, err)
	}

	return GapAnalysis{
		TargetRole:              targetRole,
		MatchPercentage:         round1(matchPct),
		MatchingSkills:          matching,
		CriticalGaps:            gaps,
		PrioritizedLearningPath: prioritized,
		EstimatedTimeToReady:    scoring.EstimateLearningTime(len(gaps)),
	}, nil
}

// GenerateLearningPath structures a gap analysis into difficulty-ordered
// phases.
func (u *Skills) GenerateLearningPath(ctx context.Context, currentSkills []string, targetRole string, experienceYears float64) (LearningPath, error) {
	analysis, err := u.AnalyzeGap(ctx, currentSkills, targetRole, experienceYears)
	if err != nil {
		return LearningPath{}, err
	}

	return LearningPath{
		TargetRole:         analysis.TargetRole,
		CurrentMatch:       analysis.MatchPercentage,
		Phases:             scoring.PartitionPhases(analysis.PrioritizedLearningPath),
		TotalEstimatedTime: analysis.EstimatedTimeToReady,
	}, nil
}

// ValidateSkills is a pure pass through the taxonomy normalizer.
func (u *Skills) ValidateSkills(skills []string) ValidationResult {
	valid, invalid := extract.ValidateSkills(skills)
	return ValidationResult{ValidSkills: valid, InvalidSkills: invalid}
}

// roleSkills derives the role's required skills from record frequency: a
// skill counts as required when it appears in >= 60% of the sampled
// records. No records means no requirements, not an error.
func (u *Skills) roleSkills(ctx context.Context, role string) ([]string, error) {
	records, err := u.records.ListByRole(ctx, role, roleSkillSampleLimit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []string{}, nil
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, rec := range records {
		seenInRecord := make(map[string]struct{}, len(rec.RequiredSkills))
		for _, skill := range rec.RequiredSkills {
			if skill == "" {
				continue
			}
			if _, dup := seenInRecord[skill]; dup {
				continue
			}
			seenInRecord[skill] = struct{}{}
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	threshold := float64(len(records)) * requiredSkillShare
	required := make([]string, 0)
	for _, skill := range order {
		if float64(counts[skill]) >= threshold {
			required = append(required, skill)
		}
	}
	return required, nil
}

func (u *Skills) prioritizeGaps(ctx context.Context, gaps []string, role string) ([]scoring.PrioritizedGap, error) {
	out := make([]scoring.PrioritizedGap, 0, len(gaps))
	for _, skill := range gaps {
		demand, err := u.skillDemand(ctx, skill, role)
		if err != nil {
			return nil, err
		}
		out = append(out, scoring.NewPrioritizedGap(skill, demand))
	}
	scoring.SortByDemand(out)
	return out, nil
}

// skillDemand is the share of role-matching records that mention the skill,
// 0-100. With no role-matching records at all it returns the neutral 50.
func (u *Skills) skillDemand(ctx context.Context, skill, role string) (float64, error) {
	total, err := u.records.CountByRole(ctx, role)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 50.0, nil
	}

	withSkill, err := u.records.CountByRoleWithSkill(ctx, role, skill)
	if err != nil {
		return 0, err
	}

	demand := float64(withSkill) / float64(total) * 100
	if demand > 100 {
		demand = 100
	}
	return demand, nil
}
