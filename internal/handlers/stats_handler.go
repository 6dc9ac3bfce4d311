package handlers

import (
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	engine *moderation.Engine
}

func NewStatsHandler(engine *moderation.Engine) *StatsHandler {
	return &StatsHandler{engine: engine}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.engine.Stats())
}
