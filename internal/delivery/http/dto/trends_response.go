package dto

import "time"

type SkillTrendResponse struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	GrowthRate float64 `json:"growth_rate"`
	Trend      string  `json:"trend"`
}

type TrendingSkillsResponse struct {
	TimeRange string               `json:"time_range"`
	Role      string               `json:"role,omitempty"`
	Location  string               `json:"location,omitempty"`
	Trends    []SkillTrendResponse `json:"trends"`
}

type MonthForecastResponse struct {
	Date            string  `json:"date"`
	Month           int     `json:"month"`
	PredictedDemand float64 `json:"predicted_demand"`
	GrowthRatePct   float64 `json:"growth_rate_pct"`
}

type SkillForecastResponse struct {
	Skill          string                  `json:"skill"`
	HorizonMonths  int                     `json:"horizon_months"`
	TotalGrowthPct float64                 `json:"total_growth_pct"`
	Trend          string                  `json:"trend"`
	Forecast       []MonthForecastResponse `json:"forecast"`
}

type DemandForecastResponse struct {
	ForecastMonths int                     `json:"forecast_months"`
	Forecasts      []SkillForecastResponse `json:"forecasts"`
	GeneratedAt    time.Time               `json:"generated_at"`
}

type MonthlySalaryTrendResponse struct {
	Month        string  `json:"month"`
	AvgSalary    float64 `json:"avg_salary"`
	MedianSalary float64 `json:"median_salary"`
	SampleSize   int     `json:"sample_size"`
}

type SalaryTrendsResponse struct {
	Role             string                       `json:"role"`
	Location         string                       `json:"location,omitempty"`
	TimeRange        string                       `json:"time_range"`
	Trends           []MonthlySalaryTrendResponse `json:"trends"`
	OverallChangePct float64                      `json:"overall_change_pct"`
}
