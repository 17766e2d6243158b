package handler

import (
	"errors"

	"techcareer/internal/delivery/http/dto"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/pkg/response"
	"techcareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type salaryPredictRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Role            string   `json:"role"`
	Location        string   `json:"location"`
	CompanySize     string   `json:"company_size"`
	Education       string   `json:"education"`
}

type compareLocationsRequest struct {
	Role      string   `json:"role"`
	Locations []string `json:"locations"`
}

type SalaryHandler struct {
	uc usecase.SalaryUsecase
}

func NewSalaryHandler(uc usecase.SalaryUsecase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

func (h *SalaryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/salary")
	grp.Post("/predict", h.Predict)
	grp.Get("/range/:role", h.Range)
	grp.Post("/compare-locations", h.CompareLocations)
	grp.Post("/negotiation-insights", h.NegotiationInsights)
}

func (h *SalaryHandler) Predict(c fiber.Ctx) error {
	var req salaryPredictRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prediction, err := h.uc.PredictSalary(c.Context(), usecase.SalaryPredictionInput{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Role:            req.Role,
		Location:        req.Location,
		CompanySize:     req.CompanySize,
		Education:       req.Education,
	})
	if err != nil {
		return mapSalaryUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SalaryPredictionResponse{
		PredictedSalary:  prediction.PredictedSalary,
		SalaryRangeMin:   prediction.SalaryRange.Min,
		SalaryRangeMax:   prediction.SalaryRange.Max,
		ConfidenceScore:  prediction.ConfidenceScore,
		MarketPercentile: prediction.MarketPercentile,
		Factors:          prediction.Factors,
	})
}

func (h *SalaryHandler) Range(c fiber.Ctx) error {
	role := c.Params("role")
	location := c.Query("location")

	r, err := h.uc.GetSalaryRange(c.Context(), role, location)
	if err != nil {
		return mapSalaryUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, marketRangeToDTO(r))
}

func (h *SalaryHandler) CompareLocations(c fiber.Ctx) error {
	var req compareLocationsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	comparisons, err := h.uc.CompareLocations(c.Context(), req.Role, req.Locations)
	if err != nil {
		return mapSalaryUsecaseError(err)
	}

	out := make([]dto.LocationComparisonResponse, 0, len(comparisons))
	for _, cmp := range comparisons {
		out = append(out, dto.LocationComparisonResponse{
			Location:          cmp.Location,
			MedianSalary:      cmp.MedianSalary,
			CostAdjustedValue: cmp.ColAdjusted,
			Min:               cmp.Min,
			Max:               cmp.Max,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SalaryHandler) NegotiationInsights(c fiber.Ctx) error {
	var req salaryPredictRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	insights, err := h.uc.GetNegotiationInsights(c.Context(), usecase.SalaryPredictionInput{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Role:            req.Role,
		Location:        req.Location,
	})
	if err != nil {
		return mapSalaryUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NegotiationInsightsResponse{
		Position: insights.Position,
		TargetRange: dto.NegotiationTargetsResponse{
			Conservative: insights.TargetRange.Conservative,
			Moderate:     insights.TargetRange.Moderate,
			Aggressive:   insights.TargetRange.Aggressive,
		},
		LeveragePoints: insights.LeveragePoints,
		MarketData:     marketRangeToDTO(insights.MarketData),
	})
}

func marketRangeToDTO(r usecase.MarketRange) dto.SalaryRangeResponse {
	return dto.SalaryRangeResponse{
		Role:       r.Role,
		Location:   r.Location,
		Min:        r.Min,
		Max:        r.Max,
		Median:     r.Median,
		Mean:       r.Mean,
		P25:        r.P25,
		P75:        r.P75,
		SampleSize: r.SampleSize,
	}
}

func mapSalaryUsecaseError(err error) error {
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
