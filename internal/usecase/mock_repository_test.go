package usecase

import (
	"context"
	"strings"
	"time"

	"techcareer/internal/domain/job"
	"techcareer/internal/domain/profile"
)

// mockRecordRepo answers the repository interface from an in-memory slice,
// mirroring the SQL filters closely enough for usecase tests.
type mockRecordRepo struct {
	records []job.Record
	err     error
}

func titleMatches(title, role string) bool {
	if role == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(role))
}

func locationMatches(location, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(filter))
}

func hasSkill(rec job.Record, skill string) bool {
	for _, s := range rec.RequiredSkills {
		if s == skill {
			return true
		}
	}
	return false
}

func (m mockRecordRepo) ListWithSkills(context.Context) ([]job.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Record, 0, len(m.records))
	for _, r := range m.records {
		if len(r.RequiredSkills) > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m mockRecordRepo) ListByRole(_ context.Context, role string, limit int) ([]job.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Record, 0)
	for _, r := range m.records {
		if titleMatches(r.Title, role) {
			out = append(out, r)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m mockRecordRepo) CountByRole(_ context.Context, role string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.records {
		if titleMatches(r.Title, role) {
			n++
		}
	}
	return n, nil
}

func (m mockRecordRepo) CountByRoleWithSkill(_ context.Context, role, skill string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.records {
		if titleMatches(r.Title, role) && hasSkill(r, skill) {
			n++
		}
	}
	return n, nil
}

func (m mockRecordRepo) CountByRoleExperienceBetween(_ context.Context, role string, minYears, maxYears float64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.records {
		if titleMatches(r.Title, role) && r.ExperienceRequired >= minYears && r.ExperienceRequired <= maxYears {
			n++
		}
	}
	return n, nil
}

func (m mockRecordRepo) ListSalariesByRole(_ context.Context, role, location string) ([]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]float64, 0)
	for _, r := range m.records {
		if titleMatches(r.Title, role) && locationMatches(r.Location, location) && r.Salary != nil {
			out = append(out, *r.Salary)
		}
	}
	return out, nil
}

func (m mockRecordRepo) ListPostedSince(_ context.Context, since time.Time, role, location string) ([]job.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Record, 0)
	for _, r := range m.records {
		if !r.PostedAt.Before(since) && titleMatches(r.Title, role) && locationMatches(r.Location, location) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m mockRecordRepo) CountWithSkillPostedBetween(_ context.Context, skill string, from, to time.Time, role, location string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.records {
		if r.PostedAt.Before(from) || !r.PostedAt.Before(to) {
			continue
		}
		if titleMatches(r.Title, role) && locationMatches(r.Location, location) && hasSkill(r, skill) {
			n++
		}
	}
	return n, nil
}

func (m mockRecordRepo) ListSalaryPointsSince(_ context.Context, role string, since time.Time, location string) ([]job.SalaryPoint, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.SalaryPoint, 0)
	for _, r := range m.records {
		if !r.PostedAt.Before(since) && titleMatches(r.Title, role) && locationMatches(r.Location, location) && r.Salary != nil {
			out = append(out, job.SalaryPoint{PostedAt: r.PostedAt, Salary: *r.Salary})
		}
	}
	return out, nil
}

func floatPtr(v float64) *float64 { return &v }

func profileWith(skills []string, years float64) profile.Profile {
	return profile.Profile{Skills: skills, ExperienceYears: years}
}
