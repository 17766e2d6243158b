package dto

type SalaryBandResponse struct {
	Predicted float64 `json:"predicted"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

type RecommendedRoleResponse struct {
	Role           string   `json:"role"`
	MatchScore     float64  `json:"match_score"`
	AvgSalary      float64  `json:"avg_salary"`
	RequiredSkills []string `json:"required_skills"`
	OpenPositions  int      `json:"open_positions"`
}

type SkillGapResponse struct {
	Role          string   `json:"role"`
	MissingSkills []string `json:"missing_skills"`
	Priority      string   `json:"priority"`
}

type TrajectoryStepResponse struct {
	Year            int                `json:"year"`
	Role            string             `json:"role"`
	SkillsCount     int                `json:"skills_count"`
	EstimatedSalary SalaryBandResponse `json:"estimated_salary"`
}

type CareerAnalysisResponse struct {
	RecommendedRoles []RecommendedRoleResponse `json:"recommended_roles"`
	SkillGaps        []SkillGapResponse        `json:"skill_gaps"`
	SalaryRange      SalaryBandResponse        `json:"salary_range"`
	GrowthTrajectory []TrajectoryStepResponse  `json:"growth_trajectory"`
	LearningPath     []string                  `json:"learning_path"`
}

type RoleRequirementsResponse struct {
	Role          string   `json:"role"`
	Skills        []string `json:"skills"`
	AvgSalary     float64  `json:"avg_salary"`
	AvgExperience float64  `json:"avg_experience"`
	SampleSize    int      `json:"sample_size"`
}

type RoleComparisonResponse struct {
	Role            string                   `json:"role"`
	MatchPercentage float64                  `json:"match_percentage"`
	Requirements    RoleRequirementsResponse `json:"requirements"`
	SkillGap        []string                 `json:"skill_gap"`
}
