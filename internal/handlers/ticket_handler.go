package handlers

import (
	"log/slog"

	"github.com/Araz9999/naxtap-moderation/internal/dto"
	"github.com/Araz9999/naxtap-moderation/internal/middleware"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/Araz9999/naxtap-moderation/internal/notify"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TicketHandler struct {
	engine   *moderation.Engine
	notifier notify.Notifier
}

func NewTicketHandler(engine *moderation.Engine, notifier notify.Notifier) *TicketHandler {
	return &TicketHandler{engine: engine, notifier: notifier}
}

func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	ticket, err := h.engine.CreateTicket(moderation.CreateTicketInput{
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Category: models.TicketCategory(req.Category),
	})
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("ticket created", "ticket_id", ticket.ID, "actor_id", userID, "category", ticket.Category)
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

func (h *TicketHandler) MyTickets(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(fiber.Map{"tickets": h.engine.TicketsByUser(userID)})
}

func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	if modParam := c.Query("moderator_id"); modParam != "" {
		moderatorID, err := uuid.Parse(modParam)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid moderator ID")
		}
		return c.JSON(fiber.Map{"tickets": h.engine.TicketsByModerator(moderatorID)})
	}

	status := models.TicketStatus(c.Query("status", string(models.TicketStatusOpen)))
	if !status.Valid() {
		return respondError(c, fiber.StatusBadRequest, "Invalid ticket status")
	}
	return c.JSON(fiber.Map{"tickets": h.engine.TicketsByStatus(status)})
}

func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid ticket ID")
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	ticket, err := h.engine.UpdateTicketStatus(ticketID, models.TicketStatus(req.Status), req.Resolution)
	if err != nil {
		return respondEngineError(c, err)
	}

	go h.notifier.TicketUpdated(ticket)
	return c.JSON(ticket)
}

func (h *TicketHandler) Assign(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid ticket ID")
	}

	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	ticket, err := h.engine.AssignTicket(ticketID, req.ModeratorID)
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("ticket assigned", "ticket_id", ticket.ID, "moderator_id", req.ModeratorID)
	go h.notifier.TicketUpdated(ticket)
	return c.JSON(ticket)
}

func (h *TicketHandler) AddResponse(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid ticket ID")
	}
	responderID, err := middleware.GetUserID(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.AddTicketResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	ticket, err := h.engine.AddTicketResponse(ticketID, moderation.TicketResponseInput{
		ResponderID:   responderID,
		ResponderRole: middleware.GetRole(c),
		Message:       req.Message,
	})
	if err != nil {
		return respondEngineError(c, err)
	}

	go h.notifier.TicketUpdated(ticket)
	return c.Status(fiber.StatusCreated).JSON(ticket)
}
