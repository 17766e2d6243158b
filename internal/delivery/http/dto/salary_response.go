package dto

type SalaryPredictionResponse struct {
	PredictedSalary  float64            `json:"predicted_salary"`
	SalaryRangeMin   float64            `json:"salary_range_min"`
	SalaryRangeMax   float64            `json:"salary_range_max"`
	ConfidenceScore  float64            `json:"confidence_score"`
	MarketPercentile float64            `json:"market_percentile"`
	Factors          map[string]float64 `json:"factors"`
}

type SalaryRangeResponse struct {
	Role       string  `json:"role"`
	Location   string  `json:"location,omitempty"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Mean       float64 `json:"mean"`
	P25        float64 `json:"p25"`
	P75        float64 `json:"p75"`
	SampleSize int     `json:"sample_size"`
}

type LocationComparisonResponse struct {
	Location          string  `json:"location"`
	MedianSalary      float64 `json:"median_salary"`
	CostAdjustedValue float64 `json:"cost_adjusted_value"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
}

type NegotiationTargetsResponse struct {
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
}

type NegotiationInsightsResponse struct {
	Position       string                     `json:"position"`
	TargetRange    NegotiationTargetsResponse `json:"target_range"`
	LeveragePoints []string                   `json:"leverage_points"`
	MarketData     SalaryRangeResponse        `json:"market_data"`
}
