package forecast

import (
	"math"
	"time"
)

// growthPattern seeds the parametric demand curve for a skill.
type growthPattern struct {
	Base       float64
	GrowthRate float64
}

var defaultPattern = growthPattern{Base: 100, GrowthRate: 0.10}

// Per-skill curve seeds. Anything unlisted projects from the default.
var skillGrowthPatterns = map[string]growthPattern{
	"Machine Learning": {Base: 100, GrowthRate: 0.15},
	"Kubernetes":       {Base: 80, GrowthRate: 0.20},
	"React":            {Base: 120, GrowthRate: 0.10},
	"Python":           {Base: 150, GrowthRate: 0.08},
}

// MonthForecast is one projected month of demand.
type MonthForecast struct {
	Date            string
	Month           int
	PredictedDemand float64
	GrowthRatePct   float64
}

// Projection is the full demand forecast for one skill.
type Projection struct {
	Skill          string
	HorizonMonths  int
	Months         []MonthForecast
	TotalGrowthPct float64
	Trend          string
}

// Project extrapolates demand for a skill over the horizon using
// base * (1+rate)^(month/12). Closed form only; nothing is fitted.
func Project(skill string, months int, now time.Time) Projection {
	pattern, ok := skillGrowthPatterns[skill]
	if !ok {
		pattern = defaultPattern
	}

	out := Projection{
		Skill:         skill,
		HorizonMonths: months,
		Months:        make([]MonthForecast, 0, months),
	}

	for month := 1; month <= months; month++ {
		demand := pattern.Base * math.Pow(1+pattern.GrowthRate, float64(month)/12)
		date := now.AddDate(0, 0, 30*month)
		out.Months = append(out.Months, MonthForecast{
			Date:            date.Format("2006-01"),
			Month:           month,
			PredictedDemand: round2(demand),
			GrowthRatePct:   round1(pattern.GrowthRate * 100),
		})
	}

	if len(out.Months) > 0 {
		final := out.Months[len(out.Months)-1].PredictedDemand
		out.TotalGrowthPct = round2((final - pattern.Base) / pattern.Base * 100)
	}

	out.Trend = "stable"
	if pattern.GrowthRate > 0.10 {
		out.Trend = "growing"
	}
	return out
}

// GrowthRate compares record counts between the two halves of a window.
// A cold first half saturates at 100% instead of dividing by zero.
func GrowthRate(recent, older int) float64 {
	if older == 0 {
		if recent > 0 {
			return 100.0
		}
		return 0.0
	}
	return round2(float64(recent-older) / float64(older) * 100)
}

// TrendLabel tags a growth rate; the 10% threshold is fixed.
func TrendLabel(growthRate float64) string {
	if growthRate > 10 {
		return "rising"
	}
	return "stable"
}

// WindowDays maps a time-range token to a day window. Unrecognized tokens
// fall back to 90 days rather than erroring.
func WindowDays(timeRange string) int {
	switch timeRange {
	case "1m":
		return 30
	case "3m":
		return 90
	case "6m":
		return 180
	case "1y":
		return 365
	default:
		return 90
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
