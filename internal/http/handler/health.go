package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"jobboard/internal/database/migration"
)

// HealthCheck reports database connectivity and the outcome of the
// startup setup steps. Setup failures degrade the report but do not
// make the service unhealthy on their own.
func HealthCheck(db *mongo.Database, setup []migration.StepResult) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"setup":  setup,
		})
	}
}

// LivenessProbe is a trivial check that the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
