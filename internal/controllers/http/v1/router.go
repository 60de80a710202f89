package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-app/docs"
	"weather-app/internal/app"
	"weather-app/pkg/logger"
)

type routes struct {
	app *app.App
	l   *logger.Logger
}

func NewRouter(
	server *fiber.App,
	a *app.App,
	l *logger.Logger,
) {
	r := &routes{
		app: a,
		l:   l,
	}

	// Swagger documentation
	server.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "application/json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	server.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	v1 := server.Group("/api/v1")
	v1.Get("/weather", r.handleWeatherCall)
	v1.Get("/state", r.handleState)
	v1.Get("/favorites", r.handleListFavorites)
	v1.Post("/favorites", r.handleAddFavorite)
	v1.Delete("/favorites/:city", r.handleRemoveFavorite)
	v1.Post("/favorites/:city/load", r.handleLoadFavorite)
}
