package handler

import (
	"errors"
	"strconv"
	"strings"

	"techcareer/internal/delivery/http/dto"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/pkg/response"
	"techcareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Forecast horizons outside this band are rejected before the usecase runs.
const (
	minForecastMonths = 1
	maxForecastMonths = 24
)

type TrendsHandler struct {
	uc usecase.TrendsUsecase
}

func NewTrendsHandler(uc usecase.TrendsUsecase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

func (h *TrendsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/trends")
	grp.Get("/skills", h.TrendingSkills)
	grp.Get("/forecast/:months", h.Forecast)
	grp.Get("/salary-trends/:role", h.SalaryTrends)
}

func (h *TrendsHandler) TrendingSkills(c fiber.Ctx) error {
	timeRange := c.Query("time_range")
	role := c.Query("role")
	location := c.Query("location")
	limit := parseQueryInt(c, "limit", 20)

	res, err := h.uc.GetTrendingSkills(c.Context(), timeRange, role, location, limit)
	if err != nil {
		return mapTrendsUsecaseError(err)
	}

	trends := make([]dto.SkillTrendResponse, 0, len(res.Trends))
	for _, t := range res.Trends {
		trends = append(trends, dto.SkillTrendResponse{
			Skill:      t.Skill,
			Count:      t.Count,
			GrowthRate: t.GrowthRate,
			Trend:      t.Trend,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TrendingSkillsResponse{
		TimeRange: res.TimeRange,
		Role:      res.Role,
		Location:  res.Location,
		Trends:    trends,
	})
}

func (h *TrendsHandler) Forecast(c fiber.Ctx) error {
	months, err := strconv.Atoi(c.Params("months"))
	if err != nil || months < minForecastMonths || months > maxForecastMonths {
		return middleware.NewAppError(fiber.StatusBadRequest, "Forecast months must be between 1 and 24", nil, err)
	}

	skills := splitQueryList(c.Query("skills"))

	res, err := h.uc.ForecastDemand(c.Context(), months, skills)
	if err != nil {
		return mapTrendsUsecaseError(err)
	}

	forecasts := make([]dto.SkillForecastResponse, 0, len(res.Forecasts))
	for _, p := range res.Forecasts {
		months := make([]dto.MonthForecastResponse, 0, len(p.Months))
		for _, m := range p.Months {
			months = append(months, dto.MonthForecastResponse{
				Date:            m.Date,
				Month:           m.Month,
				PredictedDemand: m.PredictedDemand,
				GrowthRatePct:   m.GrowthRatePct,
			})
		}
		forecasts = append(forecasts, dto.SkillForecastResponse{
			Skill:          p.Skill,
			HorizonMonths:  p.HorizonMonths,
			TotalGrowthPct: p.TotalGrowthPct,
			Trend:          p.Trend,
			Forecast:       months,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DemandForecastResponse{
		ForecastMonths: res.ForecastMonths,
		Forecasts:      forecasts,
		GeneratedAt:    res.GeneratedAt,
	})
}

func (h *TrendsHandler) SalaryTrends(c fiber.Ctx) error {
	role := c.Params("role")
	timeRange := c.Query("time_range")
	location := c.Query("location")

	res, err := h.uc.GetSalaryTrends(c.Context(), role, timeRange, location)
	if err != nil {
		return mapTrendsUsecaseError(err)
	}

	trends := make([]dto.MonthlySalaryTrendResponse, 0, len(res.Trends))
	for _, t := range res.Trends {
		trends = append(trends, dto.MonthlySalaryTrendResponse{
			Month:        t.Month,
			AvgSalary:    t.AvgSalary,
			MedianSalary: t.MedianSalary,
			SampleSize:   t.SampleSize,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SalaryTrendsResponse{
		Role:             res.Role,
		Location:         res.Location,
		TimeRange:        res.TimeRange,
		Trends:           trends,
		OverallChangePct: res.OverallChangePct,
	})
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func splitQueryList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mapTrendsUsecaseError(err error) error {
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
