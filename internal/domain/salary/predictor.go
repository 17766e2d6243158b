package salary

import (
	"math"
	"strings"
)

const (
	defaultBaseSalary = 100000.0

	// Experience adds 5% per year and saturates at 20 years.
	experienceRatePerYear = 0.05
	experienceMultiplierCap = 2.0
)

type baselineEntry struct {
	Role   string
	Salary float64
}

// Baseline salaries keyed by canonical role names. Lookup is first key that
// is a substring of the lower-cased role, so more specific titles come
// first ("senior software engineer" must resolve before "software
// engineer").
var baselineSalaries = []baselineEntry{
	{"senior software engineer", 150000},
	{"machine learning engineer", 140000},
	{"data scientist", 130000},
	{"full stack developer", 120000},
	{"backend developer", 115000},
	{"frontend developer", 105000},
	{"software engineer", 100000},
}

// Flat dollar bonus for a small set of high-value skills. Additive, not
// multiplicative; unlisted skills contribute nothing.
var highValueSkillBonus = map[string]float64{
	"Machine Learning": 15000,
	"AWS":              10000,
	"Kubernetes":       12000,
	"React":            8000,
	"Python":           5000,
}

type locationEntry struct {
	Location   string
	Multiplier float64
}

// Cost-of-market multipliers, matched case-insensitively as substrings in
// definition order. Unknown locations stay at 1.0.
var locationMultipliers = []locationEntry{
	{"san francisco", 1.35},
	{"new york", 1.30},
	{"seattle", 1.25},
	{"austin", 1.10},
	{"chicago", 1.08},
	{"denver", 1.05},
	{"remote", 1.00},
}

// Predict estimates a point salary from role baseline, experience, skill
// bonuses and location.
func Predict(skills []string, experienceYears float64, role, location string) float64 {
	base := BaseSalary(role)

	expMult := 1 + experienceYears*experienceRatePerYear
	if expMult > experienceMultiplierCap {
		expMult = experienceMultiplierCap
	}

	adjusted := base * expMult
	for _, s := range skills {
		adjusted += highValueSkillBonus[s]
	}

	adjusted *= LocationMultiplier(location)
	return round2(adjusted)
}

// BaseSalary resolves the baseline for a role title; first substring match
// in table order wins.
func BaseSalary(role string) float64 {
	roleLower := strings.ToLower(role)
	for _, e := range baselineSalaries {
		if strings.Contains(roleLower, e.Role) {
			return e.Salary
		}
	}
	return defaultBaseSalary
}

// LocationMultiplier resolves the market multiplier for a location string.
func LocationMultiplier(location string) float64 {
	if location == "" {
		return 1.0
	}
	locLower := strings.ToLower(location)
	for _, e := range locationMultipliers {
		if strings.Contains(locLower, e.Location) {
			return e.Multiplier
		}
	}
	return 1.0
}

// Range spreads a point prediction into a ±15% band.
type Range struct {
	Min    float64
	Max    float64
	Median float64
}

// PredictionRange derives the reported band around a point estimate.
func PredictionRange(predicted float64) Range {
	return Range{
		Min:    round2(predicted * 0.85),
		Max:    round2(predicted * 1.15),
		Median: round2(predicted),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
