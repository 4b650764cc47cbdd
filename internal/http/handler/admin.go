package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/service"
)

// adminError maps gateway sentinel errors onto the standard envelope.
func adminError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCollectionNotAllowed):
		return writeError(c, fiber.StatusBadRequest, "COLLECTION_NOT_ALLOWED", "collection is not accessible")
	case errors.Is(err, service.ErrOperationNotAllowed):
		return writeError(c, fiber.StatusBadRequest, "OPERATION_NOT_ALLOWED", "operation is not allowed on this collection")
	case errors.Is(err, service.ErrBadQuery):
		return writeError(c, fiber.StatusBadRequest, "BAD_QUERY", "query contains unsupported operators")
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no matching document")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// AdminFind runs an allow-listed find through the document gateway.
func AdminFind(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.FindRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		docs, err := svc.Find(c.UserContext(), req)
		if err != nil {
			return adminError(c, err)
		}
		return c.JSON(fiber.Map{"items": docs, "count": len(docs)})
	}
}

type adminWriteRequest struct {
	Collection string         `json:"collection"`
	Document   map[string]any `json:"document,omitempty"`
	Filter     map[string]any `json:"filter,omitempty"`
	Update     map[string]any `json:"update,omitempty"`
}

// AdminInsertOne inserts a document through the gateway.
func AdminInsertOne(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req adminWriteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		id, err := svc.InsertOne(c.UserContext(), req.Collection, req.Document)
		if err != nil {
			return adminError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted_id": id})
	}
}

// AdminUpdateOne updates a single document through the gateway.
func AdminUpdateOne(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req adminWriteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		matched, modified, err := svc.UpdateOne(c.UserContext(), req.Collection, req.Filter, req.Update)
		if err != nil {
			return adminError(c, err)
		}
		return c.JSON(fiber.Map{"matched_count": matched, "modified_count": modified})
	}
}

// AdminDeleteOne deletes a single document through the gateway.
func AdminDeleteOne(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req adminWriteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		deleted, err := svc.DeleteOne(c.UserContext(), req.Collection, req.Filter)
		if err != nil {
			return adminError(c, err)
		}
		return c.JSON(fiber.Map{"deleted_count": deleted})
	}
}
