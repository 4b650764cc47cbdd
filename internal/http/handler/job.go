package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/repository"
	"jobboard/internal/service"
)

// ListJobs returns active job postings, optionally filtered.
func ListJobs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := repository.JobFilter{
			Country: c.Query("country"),
			JobType: c.Query("job_type"),
			Query:   c.Query("q"),
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			f.Limit = limit
		}

		jobs, err := svc.List(c.UserContext(), f)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"items": jobs, "total": len(jobs)})
	}
}

// GetJob returns a single job posting by ID.
func GetJob(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		job, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "job not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(job)
	}
}

// ApplyToJob submits a candidate application against an open job.
func ApplyToJob(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ApplyInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		app, err := svc.Submit(c.UserContext(), c.Params("id"), c.IP(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRateLimited):
				return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many applications, try again later")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "job not found or closed")
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "name, email and phone are required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(app)
	}
}
