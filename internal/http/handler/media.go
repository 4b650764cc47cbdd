package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/service"
)

// PresignUpload issues a time-limited direct-upload URL for a new media
// record.
func PresignUpload(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.PresignInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.PresignUpload(c.UserContext(), c.IP(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRateLimited):
				return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many upload requests, try again later")
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "filename and mime are required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(res)
	}
}
