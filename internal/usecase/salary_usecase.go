package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"techcareer/internal/domain/salary"
	"techcareer/internal/pkg/stats"
	"techcareer/internal/repository"
)

// Window of comparable experience when judging prediction confidence.
const confidenceExperienceWindow = 2.0

type SalaryPredictionInput struct {
	Skills          []string
	ExperienceYears float64
	Role            string
	Location        string
	CompanySize     string
	Education       string
}

type SalaryPrediction struct {
	PredictedSalary  float64
	SalaryRange      salary.Range
	ConfidenceScore  float64
	MarketPercentile float64
	Factors          map[string]float64
}

type MarketRange struct {
	Role       string
	Location   string
	Min        float64
	Max        float64
	Median     float64
	Mean       float64
	P25        float64
	P75        float64
	SampleSize int
}

type LocationComparison struct {
	Location     string
	MedianSalary float64
	ColAdjusted  float64
	Min          float64
	Max          float64
}

type NegotiationTargets struct {
	Conservative float64
	Moderate     float64
	Aggressive   float64
}

type NegotiationInsights struct {
	Position       string
	TargetRange    NegotiationTargets
	LeveragePoints []string
	MarketData     MarketRange
}

type SalaryUsecase interface {
	PredictSalary(ctx context.Context, in SalaryPredictionInput) (SalaryPrediction, error)
	GetSalaryRange(ctx context.Context, role, location string) (MarketRange, error)
	CompareLocations(ctx context.Context, role string, locations []string) ([]LocationComparison, error)
	GetNegotiationInsights(ctx context.Context, in SalaryPredictionInput) (NegotiationInsights, error)
}

type Salary struct {
	records repository.JobRecordRepository
}

func NewSalaryUsecase(records repository.JobRecordRepository) *Salary {
	return &Salary{records: records}
}

// PredictSalary produces the point estimate plus confidence, market
// percentile and factor attribution.
func (u *Salary) PredictSalary(ctx context.Context, in SalaryPredictionInput) (SalaryPrediction, error) {
	if strings.TrimSpace(in.Role) == "" {
		return SalaryPrediction{}, ErrInvalidInput
	}
	if in.ExperienceYears < 0 {
		return SalaryPrediction{}, ErrInvalidInput
	}

	predicted := salary.Predict(in.Skills, in.ExperienceYears, in.Role, in.Location)
	predicted = salary.Adjust(predicted, in.CompanySize, in.Education)

	similar, err := u.records.CountByRoleExperienceBetween(
		ctx, in.Role,
		in.ExperienceYears-confidenceExperienceWindow,
		in.ExperienceYears+confidenceExperienceWindow,
	)
	if err != nil {
		return SalaryPrediction{}, fmt.Errorf("%w: similar records: %v", ErrInternal, err)
	}

	observed, err := u.records.ListSalariesByRole(ctx, in.Role, "")
	if err != nil {
		return SalaryPrediction{}, fmt.Errorf("%w: observed salaries: %v", ErrInternal, err)
	}

	return SalaryPrediction{
		PredictedSalary:  predicted,
		SalaryRange:      salary.PredictionRange(predicted),
		ConfidenceScore:  salary.ConfidenceFromSampleSize(similar),
		MarketPercentile: salary.MarketPercentile(predicted, observed),
		Factors: salary.AnalyzeFactors(
			len(in.Skills), in.ExperienceYears, in.Location,
			in.CompanySize != "", in.Education != "",
		),
	}, nil
}

// GetSalaryRange aggregates observed salaries for a role. Roles with no
// salary-bearing records yield ErrNoMarketData.
func (u *Salary) GetSalaryRange(ctx context.Context, role, location string) (MarketRange, error) {
	if strings.TrimSpace(role) == "" {
		return MarketRange{}, ErrInvalidInput
	}

	salaries, err := u.records.ListSalariesByRole(ctx, role, location)
	if err != nil {
		return MarketRange{}, fmt.Errorf("%w: list salaries: %v", ErrInternal, err)
	}
	if len(salaries) == 0 {
		return MarketRange{}, ErrNoMarketData
	}

	return MarketRange{
		Role:       role,
		Location:   location,
		Min:        stats.Min(salaries),
		Max:        stats.Max(salaries),
		Median:     stats.Median(salaries),
		Mean:       stats.Mean(salaries),
		P25:        stats.Percentile(salaries, 25),
		P75:        stats.Percentile(salaries, 75),
		SampleSize: len(salaries),
	}, nil
}

// CompareLocations reports the observed median per location alongside its
// cost-of-living-adjusted value. Locations without data are skipped.
func (u *Salary) CompareLocations(ctx context.Context, role string, locations []string) ([]LocationComparison, error) {
	if strings.TrimSpace(role) == "" || len(locations) == 0 {
		return nil, ErrInvalidInput
	}

	out := make([]LocationComparison, 0, len(locations))
	for _, loc := range locations {
		r, err := u.GetSalaryRange(ctx, role, loc)
		if err != nil {
			if errors.Is(err, ErrNoMarketData) {
				continue
			}
			return nil, err
		}

		col := salary.LocationMultiplier(loc)
		out = append(out, LocationComparison{
			Location:     loc,
			MedianSalary: r.Median,
			ColAdjusted:  round2(r.Median / col),
			Min:          r.Min,
			Max:          r.Max,
		})
	}
	return out, nil
}

// GetNegotiationInsights frames a prediction against market data. When the
// role has no observed salaries the targets anchor on the prediction
// itself.
func (u *Salary) GetNegotiationInsights(ctx context.Context, in SalaryPredictionInput) (NegotiationInsights, error) {
	prediction, err := u.PredictSalary(ctx, SalaryPredictionInput{
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		Role:            in.Role,
		Location:        in.Location,
	})
	if err != nil {
		return NegotiationInsights{}, err
	}

	market, err := u.GetSalaryRange(ctx, in.Role, in.Location)
	if err != nil {
		if !errors.Is(err, ErrNoMarketData) {
			return NegotiationInsights{}, err
		}
		market = MarketRange{
			Role:     in.Role,
			Location: in.Location,
			Median:   prediction.PredictedSalary,
			P75:      prediction.PredictedSalary * 1.15,
		}
	}

	position := "moderate"
	if prediction.MarketPercentile > 60 {
		position = "strong"
	}

	return NegotiationInsights{
		Position: position,
		TargetRange: NegotiationTargets{
			Conservative: round2(market.Median * 1.05),
			Moderate:     round2(market.Median * 1.10),
			Aggressive:   round2(market.P75),
		},
		LeveragePoints: leveragePoints(in.Skills, in.ExperienceYears, prediction.MarketPercentile),
		MarketData:     market,
	}, nil
}

// Skills that consistently move offers upward.
var highDemandSkills = []string{"AWS", "Kubernetes", "Machine Learning", "React", "Python"}

func leveragePoints(skills []string, experienceYears, percentile float64) []string {
	points := make([]string, 0, 4)

	if experienceYears > 5 {
		points = append(points, fmt.Sprintf("Strong experience: %g years", experienceYears))
	}
	if len(skills) > 10 {
		points = append(points, fmt.Sprintf("Diverse skill set: %d skills", len(skills)))
	}
	if percentile > 70 {
		points = append(points, fmt.Sprintf("Above market average (top %.0f%%)", 100-percentile))
	}

	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}
	matching := make([]string, 0)
	for _, s := range highDemandSkills {
		if _, ok := have[s]; ok {
			matching = append(matching, s)
		}
	}
	if len(matching) > 0 {
		points = append(points, "High-demand skills: "+strings.Join(matching, ", "))
	}

	return points
}
