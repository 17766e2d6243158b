package routes

import (
	"techcareer/internal/config"
	"techcareer/internal/database"
	"techcareer/internal/delivery/http/handler"
	"techcareer/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  c,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache)
}
