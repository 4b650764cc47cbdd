package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/model"
	"jobboard/internal/service"
)

// ListTestimonials returns active testimonials.
func ListTestimonials(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListTestimonials(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"items": items})
	}
}

// CreateTestimonial stores a new testimonial.
func CreateTestimonial(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Testimonial
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreateTestimonial(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "required fields are missing")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListPartners returns active partner entries.
func ListPartners(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListPartners(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"items": items})
	}
}

// CreatePartner stores a new partner entry.
func CreatePartner(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Partner
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreatePartner(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "required fields are missing")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListBlogPosts returns published blog posts.
func ListBlogPosts(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListBlogPosts(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"items": items})
	}
}

// CreateBlogPost stores a new blog post.
func CreateBlogPost(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.BlogPost
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreateBlogPost(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "required fields are missing")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}
