package app

import (
	"fmt"
	"log"
	"strings"

	"techcareer/internal/config"
	"techcareer/internal/delivery/http/middleware"
	"techcareer/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: container.Config.App.AppName,
	})

	registerGlobalMiddleware(f)
	routes.NewRegistry(container.Config, container.DB, container.Cache).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessLog := middleware.NewAccessLogMiddleware(log.Default())
	app.Use(accessLog.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
