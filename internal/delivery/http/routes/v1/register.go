package v1

import (
	"techcareer/internal/config"
	"techcareer/internal/database"
	"techcareer/internal/delivery/http/handler"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/infrastructure/cache"
	"techcareer/internal/pkg/jwt"
	"techcareer/internal/repository"
	"techcareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis) {
	if r == nil {
		return
	}

	records := repository.NewPostgresJobRecordRepository(db)

	careerUC := usecase.NewCareerUsecase(records)
	skillsUC := usecase.NewSkillsUsecase(records)
	salaryUC := usecase.NewSalaryUsecase(records)
	trendsUC := usecase.NewTrendsUsecase(records, c)

	careerHandler := handler.NewCareerHandler(careerUC)
	skillsHandler := handler.NewSkillsHandler(skillsUC)
	salaryHandler := handler.NewSalaryHandler(salaryUC)
	trendsHandler := handler.NewTrendsHandler(trendsUC)

	// Without an access secret the API runs open, e.g. behind a gateway
	// that already authenticates callers.
	api := r
	if cfg.Auth.AccessSecret != "" {
		jwtSvc := jwt.NewHMACService(cfg.Auth.AccessSecret)
		authMw := middleware.NewAuthMiddleware(jwtSvc)
		api = r.Group("", authMw.Middleware())
	}

	careerHandler.RegisterRoutes(api)
	skillsHandler.RegisterRoutes(api)
	salaryHandler.RegisterRoutes(api)
	trendsHandler.RegisterRoutes(api)
}
