package handler

import (
	"techcareer/internal/database"
	"techcareer/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unconfigured"
	} else if err := h.db.Ping(c.Context()); err != nil {
		dbStatus = "unreachable"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":   "healthy",
		"database": dbStatus,
	})
}
