package dto

type SkillExtractionResponse struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	TechnicalCount  int      `json:"technical_count"`
	SoftCount       int      `json:"soft_count"`
	TotalCount      int      `json:"total_count"`
}

type PrioritizedGapResponse struct {
	Skill                  string  `json:"skill"`
	Priority               string  `json:"priority"`
	DemandScore            float64 `json:"demand_score"`
	Difficulty             int     `json:"difficulty"`
	EstimatedLearningWeeks int     `json:"estimated_learning_weeks"`
}

type GapAnalysisResponse struct {
	TargetRole              string                   `json:"target_role"`
	MatchPercentage         float64                  `json:"match_percentage"`
	MatchingSkills          []string                 `json:"matching_skills"`
	CriticalGaps            []string                 `json:"critical_gaps"`
	PrioritizedLearningPath []PrioritizedGapResponse `json:"prioritized_learning_path"`
	EstimatedTimeToReady    string                   `json:"estimated_time_to_ready"`
}

type LearningPhaseResponse struct {
	Phase    int      `json:"phase"`
	Focus    string   `json:"focus"`
	Skills   []string `json:"skills"`
	Duration string   `json:"duration"`
}

type LearningPathResponse struct {
	TargetRole         string                  `json:"target_role"`
	CurrentMatch       float64                 `json:"current_match"`
	Phases             []LearningPhaseResponse `json:"phases"`
	TotalEstimatedTime string                  `json:"total_estimated_time"`
}

type SkillValidationResponse struct {
	ValidSkills   []string `json:"valid_skills"`
	InvalidSkills []string `json:"invalid_skills"`
}
