package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-app/config"
	"weather-app/pkg/logger"
)

// InitFiberServer builds the fiber app with recovery, CORS, request logging
// and the liveness/readiness probes under /manage.
func InitFiberServer(appName string, cnf config.ServerConfig, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               appName,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           cnf.ReadTimeout,
		WriteTimeout:          cnf.WriteTimeout,
		IdleTimeout:           cnf.IdleTimeout,
		BodyLimit:             1024 * 1024,
		DisableStartupMessage: true,
	})

	s.Use(requestLogger(l))
	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

func requestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// resolve errors here so the logged status is the one sent
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		l.Debug("http request", map[string]any{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		})

		return nil
	}
}
