package handlers

import (
	"log/slog"

	"github.com/Araz9999/naxtap-moderation/internal/dto"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ModeratorHandler struct {
	engine *moderation.Engine
}

func NewModeratorHandler(engine *moderation.Engine) *ModeratorHandler {
	return &ModeratorHandler{engine: engine}
}

func (h *ModeratorHandler) AddModerator(c *fiber.Ctx) error {
	var req dto.AddModeratorRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	mod, err := h.engine.AddModerator(req.UserID, toCapabilities(req.Permissions))
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("moderator added", "moderator_id", mod.ID, "permissions", len(mod.Permissions))
	return c.Status(fiber.StatusCreated).JSON(mod)
}

func (h *ModeratorHandler) ListModerators(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"moderators": h.engine.Moderators()})
}

func (h *ModeratorHandler) RemoveModerator(c *fiber.Ctx) error {
	moderatorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid moderator ID")
	}

	if err := h.engine.RemoveModerator(moderatorID); err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("moderator removed", "moderator_id", moderatorID)
	return c.JSON(dto.MessageResponse{Message: "Moderator removed successfully"})
}

func (h *ModeratorHandler) UpdatePermissions(c *fiber.Ctx) error {
	moderatorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid moderator ID")
	}

	var req dto.UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	mod, err := h.engine.UpdateModeratorPermissions(moderatorID, toCapabilities(req.Permissions))
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("moderator permissions updated", "moderator_id", mod.ID, "permissions", len(mod.Permissions))
	return c.JSON(mod)
}

func toCapabilities(perms []string) []models.Capability {
	out := make([]models.Capability, len(perms))
	for i, p := range perms {
		out[i] = models.Capability(p)
	}
	return out
}
