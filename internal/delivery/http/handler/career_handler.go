package handler

import (
	"errors"

	"techcareer/internal/delivery/http/dto"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/domain/profile"
	"techcareer/internal/pkg/response"
	"techcareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type careerAnalyzeRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	CurrentRole     string   `json:"current_role"`
	Education       string   `json:"education"`
	Location        string   `json:"location"`
}

type compareRolesRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	TargetRoles     []string `json:"target_roles"`
}

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/career")
	grp.Post("/analyze", h.Analyze)
	grp.Post("/compare-roles", h.CompareRoles)
	grp.Get("/role-requirements/:role_name", h.RoleRequirements)
}

func (h *CareerHandler) Analyze(c fiber.Ctx) error {
	var req careerAnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.uc.AnalyzeCareerPath(c.Context(), profile.Profile{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		CurrentRole:     req.CurrentRole,
		Education:       req.Education,
		Location:        req.Location,
	})
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, careerAnalysisToDTO(analysis))
}

func (h *CareerHandler) CompareRoles(c fiber.Ctx) error {
	var req compareRolesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	comparisons, err := h.uc.CompareRoles(c.Context(), profile.Profile{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
	}, req.TargetRoles)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	out := make([]dto.RoleComparisonResponse, 0, len(comparisons))
	for _, cmp := range comparisons {
		out = append(out, dto.RoleComparisonResponse{
			Role:            cmp.Role,
			MatchPercentage: cmp.MatchPercentage,
			Requirements:    roleRequirementsToDTO(cmp.Requirements),
			SkillGap:        cmp.SkillGap,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CareerHandler) RoleRequirements(c fiber.Ctx) error {
	roleName := c.Params("role_name")

	reqs, err := h.uc.GetRoleRequirements(c.Context(), roleName)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, roleRequirementsToDTO(reqs))
}

func careerAnalysisToDTO(a usecase.CareerAnalysis) dto.CareerAnalysisResponse {
	roles := make([]dto.RecommendedRoleResponse, 0, len(a.RecommendedRoles))
	for _, r := range a.RecommendedRoles {
		roles = append(roles, dto.RecommendedRoleResponse{
			Role:           r.Role,
			MatchScore:     r.MatchScore,
			AvgSalary:      r.AvgSalary,
			RequiredSkills: r.RequiredSkills,
			OpenPositions:  r.Count,
		})
	}

	gaps := make([]dto.SkillGapResponse, 0, len(a.SkillGaps))
	for _, g := range a.SkillGaps {
		gaps = append(gaps, dto.SkillGapResponse{
			Role:          g.Role,
			MissingSkills: g.MissingSkills,
			Priority:      g.Priority,
		})
	}

	trajectory := make([]dto.TrajectoryStepResponse, 0, len(a.GrowthTrajectory))
	for _, step := range a.GrowthTrajectory {
		trajectory = append(trajectory, dto.TrajectoryStepResponse{
			Year:            step.Year,
			Role:            step.Role,
			SkillsCount:     step.SkillsCount,
			EstimatedSalary: salaryBandToDTO(step.EstimatedSalary),
		})
	}

	return dto.CareerAnalysisResponse{
		RecommendedRoles: roles,
		SkillGaps:        gaps,
		SalaryRange:      salaryBandToDTO(a.SalaryRange),
		GrowthTrajectory: trajectory,
		LearningPath:     a.LearningPath,
	}
}

func salaryBandToDTO(b usecase.SalaryBand) dto.SalaryBandResponse {
	return dto.SalaryBandResponse{Predicted: b.Predicted, Min: b.Min, Max: b.Max}
}

func roleRequirementsToDTO(r usecase.RoleRequirements) dto.RoleRequirementsResponse {
	return dto.RoleRequirementsResponse{
		Role:          r.Role,
		Skills:        r.Skills,
		AvgSalary:     r.AvgSalary,
		AvgExperience: r.AvgExperience,
		SampleSize:    r.SampleSize,
	}
}

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNoMarketData):
		return middleware.NewAppError(fiber.StatusNotFound, "No market data for role", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
