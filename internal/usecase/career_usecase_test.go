package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"techcareer/internal/domain/job"
)

func manyRoleRecords() []job.Record {
	out := make([]job.Record, 0, 12)
	for i := 0; i < 12; i++ {
		out = append(out, job.Record{
			Title:              fmt.Sprintf("Role %d", i),
			RequiredSkills:     []string{"Go", fmt.Sprintf("Skill %d", i)},
			ExperienceRequired: float64(i),
			Salary:             floatPtr(100000 + float64(i)*1000),
		})
	}
	return out
}

func TestCareer_AnalyzeCareerPath(t *testing.T) {
	uc := NewCareerUsecase(mockRecordRepo{records: manyRoleRecords()})

	analysis, err := uc.AnalyzeCareerPath(context.Background(), profileWith([]string{"Go"}, 3))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(analysis.RecommendedRoles) != 10 {
		t.Fatalf("recommendations must cap at 10, got %d", len(analysis.RecommendedRoles))
	}
	for i := 1; i < len(analysis.RecommendedRoles); i++ {
		if analysis.RecommendedRoles[i].MatchScore > analysis.RecommendedRoles[i-1].MatchScore {
			t.Fatalf("scores not descending")
		}
	}

	if len(analysis.SkillGaps) > 5 {
		t.Fatalf("gap analysis covers at most 5 roles, got %d", len(analysis.SkillGaps))
	}

	if analysis.SalaryRange.Predicted <= 0 {
		t.Fatalf("salary range = %+v", analysis.SalaryRange)
	}
	if analysis.SalaryRange.Min >= analysis.SalaryRange.Max {
		t.Fatalf("band inverted: %+v", analysis.SalaryRange)
	}

	if len(analysis.GrowthTrajectory) != 4 {
		t.Fatalf("trajectory should span years 0..3, got %d", len(analysis.GrowthTrajectory))
	}
	if analysis.GrowthTrajectory[0].Role != "Current" {
		t.Fatalf("year 0 = %+v", analysis.GrowthTrajectory[0])
	}
	if analysis.GrowthTrajectory[1].SkillsCount != 3 {
		t.Fatalf("year 1 skills = %d", analysis.GrowthTrajectory[1].SkillsCount)
	}
	if analysis.GrowthTrajectory[1].Role != analysis.RecommendedRoles[0].Role {
		t.Fatalf("year 1 role = %s", analysis.GrowthTrajectory[1].Role)
	}

	if len(analysis.LearningPath) == 0 || len(analysis.LearningPath) > 10 {
		t.Fatalf("learning path = %v", analysis.LearningPath)
	}
}

func TestCareer_AnalyzeCareerPath_NegativeExperience(t *testing.T) {
	uc := NewCareerUsecase(mockRecordRepo{})

	if _, err := uc.AnalyzeCareerPath(context.Background(), profileWith(nil, -1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareer_AnalyzeCareerPath_EmptyStore(t *testing.T) {
	uc := NewCareerUsecase(mockRecordRepo{})

	analysis, err := uc.AnalyzeCareerPath(context.Background(), profileWith([]string{"Go"}, 3))
	if err != nil {
		t.Fatalf("empty store must not error: %v", err)
	}
	if len(analysis.RecommendedRoles) != 0 || len(analysis.SkillGaps) != 0 {
		t.Fatalf("analysis = %+v", analysis)
	}
	if analysis.GrowthTrajectory[1].Role != "Projected" {
		t.Fatalf("fallback role = %s", analysis.GrowthTrajectory[1].Role)
	}
}

func TestCareer_GetRoleRequirements(t *testing.T) {
	records := []job.Record{
		{Title: "Backend Developer", RequiredSkills: []string{"Go", "PostgreSQL"}, ExperienceRequired: 4, Salary: floatPtr(110000)},
		{Title: "Backend Developer", RequiredSkills: []string{"Go", "Docker"}, ExperienceRequired: 2, Salary: floatPtr(90000)},
	}
	uc := NewCareerUsecase(mockRecordRepo{records: records})

	reqs, err := uc.GetRoleRequirements(context.Background(), "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reqs.SampleSize != 2 {
		t.Fatalf("sample size = %d", reqs.SampleSize)
	}
	if reqs.Skills[0] != "Go" {
		t.Fatalf("most frequent skill should lead, got %v", reqs.Skills)
	}
	if reqs.AvgSalary != 100000 {
		t.Fatalf("avg salary = %v", reqs.AvgSalary)
	}
	if reqs.AvgExperience != 3 {
		t.Fatalf("avg experience = %v", reqs.AvgExperience)
	}
}

func TestCareer_GetRoleRequirements_Errors(t *testing.T) {
	uc := NewCareerUsecase(mockRecordRepo{})

	if _, err := uc.GetRoleRequirements(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.GetRoleRequirements(context.Background(), "Astronaut"); !errors.Is(err, ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}
}

func TestCareer_CompareRoles(t *testing.T) {
	records := []job.Record{
		{Title: "Backend Developer", RequiredSkills: []string{"Go", "PostgreSQL"}},
		{Title: "Data Scientist", RequiredSkills: []string{"Python", "Pandas"}},
	}
	uc := NewCareerUsecase(mockRecordRepo{records: records})

	out, err := uc.CompareRoles(context.Background(), profileWith([]string{"Go"}, 3), []string{"Backend Developer", "Astronaut", "Data Scientist"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("roles without data should be skipped, got %+v", out)
	}
	if out[0].MatchPercentage != 50.0 {
		t.Fatalf("backend match = %v", out[0].MatchPercentage)
	}
	if out[1].MatchPercentage != 0.0 {
		t.Fatalf("data science match = %v", out[1].MatchPercentage)
	}

	if _, err := uc.CompareRoles(context.Background(), profileWith(nil, 0), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
