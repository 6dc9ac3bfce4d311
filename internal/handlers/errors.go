package handlers

import (
	"errors"

	"github.com/Araz9999/naxtap-moderation/internal/dto"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/gofiber/fiber/v2"
)

// respondEngineError maps the engine's error taxonomy onto HTTP statuses.
func respondEngineError(c *fiber.Ctx, err error) error {
	var (
		validation *moderation.ValidationError
		notFound   *moderation.NotFoundError
		denied     *moderation.PermissionDeniedError
		invariant  *moderation.InvariantViolationError
	)
	switch {
	case errors.As(err, &validation):
		return respondError(c, fiber.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		return respondError(c, fiber.StatusNotFound, notFound.Error())
	case errors.As(err, &denied):
		return respondError(c, fiber.StatusForbidden, denied.Error())
	case errors.As(err, &invariant):
		return respondError(c, fiber.StatusConflict, invariant.Message)
	default:
		return respondError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}
