package usecase

import (
	"context"
	"errors"
	"testing"

	"techcareer/internal/domain/job"
)

func salaryRecords() []job.Record {
	return []job.Record{
		{Title: "Backend Developer", Location: "Seattle", ExperienceRequired: 3, Salary: floatPtr(100000)},
		{Title: "Backend Developer", Location: "Seattle", ExperienceRequired: 4, Salary: floatPtr(120000)},
		{Title: "Backend Developer", Location: "Denver", ExperienceRequired: 2, Salary: floatPtr(90000)},
		{Title: "Backend Developer", Location: "Denver", ExperienceRequired: 8, Salary: nil},
	}
}

func TestSalary_PredictSalary_InvalidInput(t *testing.T) {
	uc := NewSalaryUsecase(mockRecordRepo{})

	if _, err := uc.PredictSalary(context.Background(), SalaryPredictionInput{Role: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.PredictSalary(context.Background(), SalaryPredictionInput{Role: "Backend Developer", ExperienceYears: -2}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSalary_PredictSalary(t *testing.T) {
	uc := NewSalaryUsecase(mockRecordRepo{records: salaryRecords()})

	prediction, err := uc.PredictSalary(context.Background(), SalaryPredictionInput{
		Role:            "Backend Developer",
		ExperienceYears: 3,
		Location:        "Remote",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 115000 * 1.15, no bonuses, remote multiplier 1.0.
	if prediction.PredictedSalary != 132250.0 {
		t.Fatalf("predicted = %v", prediction.PredictedSalary)
	}
	if prediction.SalaryRange.Min >= prediction.SalaryRange.Max {
		t.Fatalf("range = %+v", prediction.SalaryRange)
	}
	// Only 3 records within +/- 2 years of 3.
	if prediction.ConfidenceScore != 0.65 {
		t.Fatalf("confidence = %v", prediction.ConfidenceScore)
	}
	// All three observed salaries sit below the prediction.
	if prediction.MarketPercentile != 100.0 {
		t.Fatalf("percentile = %v", prediction.MarketPercentile)
	}
	if len(prediction.Factors) != 5 {
		t.Fatalf("factors = %v", prediction.Factors)
	}
}

func TestSalary_GetSalaryRange(t *testing.T) {
	uc := NewSalaryUsecase(mockRecordRepo{records: salaryRecords()})

	r, err := uc.GetSalaryRange(context.Background(), "Backend Developer", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.SampleSize != 3 {
		t.Fatalf("sample size = %d", r.SampleSize)
	}
	if r.Min != 90000 || r.Max != 120000 {
		t.Fatalf("min/max = %v/%v", r.Min, r.Max)
	}
	if r.Median != 100000 {
		t.Fatalf("median = %v", r.Median)
	}
}

func TestSalary_GetSalaryRange_NoData(t *testing.T) {
	uc := NewSalaryUsecase(mockRecordRepo{records: salaryRecords()})

	if _, err := uc.GetSalaryRange(context.Background(), "Astronaut", ""); !errors.Is(err, ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}
}

func TestSalary_CompareLocations_SkipsMissing(t *testing.T) {
	uc := NewSalaryUsecase(mockRecordRepo{records: salaryRecords()})

	out, err := uc.CompareLocations(context.Background(), "Backend Developer", []string{"Seattle", "Mars", "Denver"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected Mars skipped, got %+v", out)
	}
	if out[0].Location != "Seattle" || out[1].Location != "Denver" {
		t.Fatalf("order = %+v", out)
	}
	// Seattle median 110000 deflated by its 1.25 market multiplier.
	if out[0].ColAdjusted != 88000.0 {
		t.Fatalf("col adjusted = %v", out[0].ColAdjusted)
	}
}

func TestSalary_GetNegotiationInsights_FallbackMarket(t *testing.T) {
	records := []job.Record{
		{Title: "Backend Developer", ExperienceRequired: 3},
	}
	uc := NewSalaryUsecase(mockRecordRepo{records: records})

	insights, err := uc.GetNegotiationInsights(context.Background(), SalaryPredictionInput{
		Role:            "Backend Developer",
		ExperienceYears: 3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// With no observed salaries the market anchors on the prediction.
	predicted := 132250.0
	if insights.MarketData.Median != predicted {
		t.Fatalf("median = %v", insights.MarketData.Median)
	}
	if insights.TargetRange.Conservative != 138862.5 {
		t.Fatalf("conservative = %v", insights.TargetRange.Conservative)
	}
	if insights.Position != "moderate" {
		t.Fatalf("position = %s", insights.Position)
	}
}
