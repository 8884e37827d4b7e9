package handlers

import (
	"context"
	"time"

	"weather-api/internal/logger"

	"github.com/gofiber/fiber/v2"
)

const HealthzTimeout = 5 * time.Second

// Pinger reports whether the document store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthz returns a handler reporting the health of the server and its store.
// @Summary Health check
// @Description Check if the server and MongoDB are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func Healthz(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), HealthzTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.L().Warn("health check failed", "handler", "healthz", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "down",
				"error":  "database unreachable",
			})
		}

		return c.JSON(fiber.Map{
			"status": "ok",
		})
	}
}
