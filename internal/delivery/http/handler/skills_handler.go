package handler

import (
	"errors"

	"techcareer/internal/delivery/http/dto"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/domain/scoring"
	"techcareer/internal/pkg/response"
	"techcareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type extractSkillsRequest struct {
	JobDescription string `json:"job_description"`
}

type gapAnalysisRequest struct {
	CurrentSkills   []string `json:"current_skills"`
	TargetRole      string   `json:"target_role"`
	ExperienceYears float64  `json:"experience_years"`
}

type validateSkillsRequest struct {
	Skills []string `json:"skills"`
}

type SkillsHandler struct {
	uc usecase.SkillsUsecase
}

func NewSkillsHandler(uc usecase.SkillsUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skills")
	grp.Post("/extract", h.Extract)
	grp.Post("/gap-analysis", h.GapAnalysis)
	grp.Post("/learning-path", h.LearningPath)
	grp.Post("/validate", h.Validate)
}

func (h *SkillsHandler) Extract(c fiber.Ctx) error {
	var req extractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ExtractSkills(c.Context(), req.JobDescription)
	if err != nil {
		return mapSkillsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillExtractionResponse{
		TechnicalSkills: res.TechnicalSkills,
		SoftSkills:      res.SoftSkills,
		TechnicalCount:  res.Counts.Technical,
		SoftCount:       res.Counts.Soft,
		TotalCount:      res.Counts.Total,
	})
}

func (h *SkillsHandler) GapAnalysis(c fiber.Ctx) error {
	var req gapAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.uc.AnalyzeGap(c.Context(), req.CurrentSkills, req.TargetRole, req.ExperienceYears)
	if err != nil {
		return mapSkillsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GapAnalysisResponse{
		TargetRole:              analysis.TargetRole,
		MatchPercentage:         analysis.MatchPercentage,
		MatchingSkills:          analysis.MatchingSkills,
		CriticalGaps:            analysis.CriticalGaps,
		PrioritizedLearningPath: prioritizedGapsToDTO(analysis.PrioritizedLearningPath),
		EstimatedTimeToReady:    analysis.EstimatedTimeToReady,
	})
}

func (h *SkillsHandler) LearningPath(c fiber.Ctx) error {
	var req gapAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	path, err := h.uc.GenerateLearningPath(c.Context(), req.CurrentSkills, req.TargetRole, req.ExperienceYears)
	if err != nil {
		return mapSkillsUsecaseError(err)
	}

	phases := make([]dto.LearningPhaseResponse, 0, len(path.Phases))
	for _, p := range path.Phases {
		skills := make([]string, 0, len(p.Skills))
		for _, g := range p.Skills {
			skills = append(skills, g.Skill)
		}
		phases = append(phases, dto.LearningPhaseResponse{
			Phase:    p.Phase,
			Focus:    p.Focus,
			Skills:   skills,
			Duration: p.Duration,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LearningPathResponse{
		TargetRole:         path.TargetRole,
		CurrentMatch:       path.CurrentMatch,
		Phases:             phases,
		TotalEstimatedTime: path.TotalEstimatedTime,
	})
}

func (h *SkillsHandler) Validate(c fiber.Ctx) error {
	var req validateSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res := h.uc.ValidateSkills(req.Skills)

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillValidationResponse{
		ValidSkills:   res.ValidSkills,
		InvalidSkills: res.InvalidSkills,
	})
}

func prioritizedGapsToDTO(gaps []scoring.PrioritizedGap) []dto.PrioritizedGapResponse {
	out := make([]dto.PrioritizedGapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, dto.PrioritizedGapResponse{
			Skill:                  g.Skill,
			Priority:               g.Priority,
			DemandScore:            g.DemandScore,
			Difficulty:             g.Difficulty,
			EstimatedLearningWeeks: g.EstimatedLearningWeeks,
		})
	}
	return out
}

func mapSkillsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
