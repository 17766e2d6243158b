package salary

import "strings"

// Company-size multipliers, exact lower-cased key match.
var companySizeMultipliers = map[string]float64{
	"startup":    0.90,
	"small":      0.95,
	"medium":     1.00,
	"large":      1.10,
	"enterprise": 1.15,
}

type educationEntry struct {
	Keyword    string
	Multiplier float64
}

// Education multipliers, first keyword contained in the lower-cased input
// wins.
var educationMultipliers = []educationEntry{
	{"bachelor", 1.00},
	{"master", 1.10},
	{"phd", 1.20},
	{"bootcamp", 0.95},
}

// CompanySizeMultiplier defaults to 1.0 for unknown sizes.
func CompanySizeMultiplier(size string) float64 {
	if m, ok := companySizeMultipliers[strings.ToLower(size)]; ok {
		return m
	}
	return 1.0
}

// EducationMultiplier defaults to 1.0 when no keyword matches.
func EducationMultiplier(education string) float64 {
	eduLower := strings.ToLower(education)
	for _, e := range educationMultipliers {
		if strings.Contains(eduLower, e.Keyword) {
			return e.Multiplier
		}
	}
	return 1.0
}

// Adjust applies the higher-level multipliers on top of a base prediction:
// company size first, then education. Empty inputs leave the value alone.
func Adjust(predicted float64, companySize, education string) float64 {
	adjusted := predicted
	if companySize != "" {
		adjusted *= CompanySizeMultiplier(companySize)
	}
	if education != "" {
		adjusted *= EducationMultiplier(education)
	}
	return round2(adjusted)
}

// ConfidenceFromSampleSize buckets prediction confidence by how many
// comparable historical records exist. Discrete steps, not a model.
func ConfidenceFromSampleSize(similarRecords int) float64 {
	switch {
	case similarRecords > 100:
		return 0.95
	case similarRecords > 50:
		return 0.85
	case similarRecords > 20:
		return 0.75
	default:
		return 0.65
	}
}

// MarketPercentile places a predicted salary among observed ones: the share
// strictly below it, as a percentage. No observations yields the neutral
// 50th percentile.
func MarketPercentile(predicted float64, observed []float64) float64 {
	if len(observed) == 0 {
		return 50.0
	}
	below := 0
	for _, s := range observed {
		if s < predicted {
			below++
		}
	}
	return round1(float64(below) / float64(len(observed)) * 100)
}

// Factor attribution weights.
const (
	factorExperienceWeight = 0.35
	factorSkillsWeight     = 0.30
	factorLocationWeight   = 0.20
)

// AnalyzeFactors assigns the five named salary factors raw weights via the
// fixed formulas and normalizes them to sum to 100.0.
func AnalyzeFactors(skillCount int, experienceYears float64, location string, hasCompanySize, hasEducation bool) map[string]float64 {
	expRaw := experienceYears / 15.0
	if expRaw > 1 {
		expRaw = 1
	}
	skillRaw := float64(skillCount) / 20.0
	if skillRaw > 1 {
		skillRaw = 1
	}

	raw := map[string]float64{
		"experience":   expRaw * factorExperienceWeight,
		"skills":       skillRaw * factorSkillsWeight,
		"location":     (LocationMultiplier(location) - 0.9) * factorLocationWeight,
		"company_size": 0.05,
		"education":    0.00,
	}
	if hasCompanySize {
		raw["company_size"] = 0.10
	}
	if hasEducation {
		raw["education"] = 0.05
	}

	total := 0.0
	for _, v := range raw {
		total += v
	}

	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		out[k] = round1(v / total * 100)
	}
	return out
}
