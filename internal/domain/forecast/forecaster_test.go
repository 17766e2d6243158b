package forecast

import (
	"testing"
	"time"
)

func TestGrowthRate(t *testing.T) {
	if got := GrowthRate(10, 0); got != 100.0 {
		t.Fatalf("cold start with activity should saturate at 100, got %v", got)
	}
	if got := GrowthRate(0, 0); got != 0.0 {
		t.Fatalf("no activity should be flat, got %v", got)
	}
	if got := GrowthRate(15, 10); got != 50.0 {
		t.Fatalf("got %v", got)
	}
	if got := GrowthRate(5, 10); got != -50.0 {
		t.Fatalf("got %v", got)
	}
}

func TestTrendLabel(t *testing.T) {
	if got := TrendLabel(10.0); got != "stable" {
		t.Fatalf("threshold is exclusive, got %s", got)
	}
	if got := TrendLabel(10.1); got != "rising" {
		t.Fatalf("got %s", got)
	}
}

func TestWindowDays(t *testing.T) {
	cases := map[string]int{
		"1m": 30, "3m": 90, "6m": 180, "1y": 365,
		"": 90, "2w": 90, "nonsense": 90,
	}
	for in, want := range cases {
		if got := WindowDays(in); got != want {
			t.Fatalf("WindowDays(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestProject_KnownSkill(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := Project("Kubernetes", 6, now)

	if p.HorizonMonths != 6 || len(p.Months) != 6 {
		t.Fatalf("horizon = %d, months = %d", p.HorizonMonths, len(p.Months))
	}
	if p.Trend != "growing" {
		t.Fatalf("trend = %s", p.Trend)
	}
	for i := 1; i < len(p.Months); i++ {
		if p.Months[i].PredictedDemand < p.Months[i-1].PredictedDemand {
			t.Fatalf("demand should not decline for a positive rate: %v", p.Months)
		}
	}
	if p.Months[0].Date != "2025-07" {
		t.Fatalf("first month date = %s", p.Months[0].Date)
	}
	if p.TotalGrowthPct <= 0 {
		t.Fatalf("total growth = %v", p.TotalGrowthPct)
	}
}

func TestProject_UnlistedSkillUsesDefault(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := Project("COBOL", 12, now)

	if p.Trend != "stable" {
		t.Fatalf("default rate 0.10 is not growing, got %s", p.Trend)
	}
	// base 100 at rate 0.10 over a full year lands on 110.
	final := p.Months[len(p.Months)-1].PredictedDemand
	if final != 110.0 {
		t.Fatalf("final demand = %v", final)
	}
	if p.TotalGrowthPct != 10.0 {
		t.Fatalf("total growth = %v", p.TotalGrowthPct)
	}
}
