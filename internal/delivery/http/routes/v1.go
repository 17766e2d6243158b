package routes

import (
	"techcareer/internal/config"
	"techcareer/internal/database"
	v1 "techcareer/internal/delivery/http/routes/v1"
	"techcareer/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, c)
}
