package routes

import (
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/config"
	"github.com/Araz9999/naxtap-moderation/internal/handlers"
	"github.com/Araz9999/naxtap-moderation/internal/middleware"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	engine *moderation.Engine,
	reportHandler *handlers.ReportHandler,
	ticketHandler *handlers.TicketHandler,
	moderatorHandler *handlers.ModeratorHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	jwt := middleware.JWTProtected(cfg)
	capability := func(cap models.Capability) fiber.Handler {
		return middleware.RequireCapability(engine, cfg, cap)
	}

	// User-facing endpoints
	api.Post("/reports", jwt, reportHandler.CreateReport)
	api.Post("/tickets", jwt, ticketHandler.CreateTicket)
	api.Get("/tickets", jwt, ticketHandler.MyTickets)
	// Ownership-or-permission is enforced inside the engine.
	api.Post("/tickets/:id/responses", jwt, ticketHandler.AddResponse)

	api.Get("/users/:id/moderation-history", jwt, capability(models.CapViewAnalytics), reportHandler.UserHistory)

	// Moderation panel. A valid X-Ops-Token stands in for the JWT here so
	// the registry can be repaired when no staff member can log in.
	admin := api.Group("/admin", middleware.JWTOrOpsToken(cfg))
	admin.Get("/reports", capability(models.CapManageReports), reportHandler.ListReports)
	admin.Put("/reports/:id/status", capability(models.CapManageReports), reportHandler.UpdateStatus)
	// Assignment is dispatch, not resolution; the engine applies no
	// capability check of its own on this path.
	admin.Put("/reports/:id/assign", capability(models.CapManageReports), reportHandler.Assign)
	admin.Post("/reports/:id/resolve", capability(models.CapManageReports), reportHandler.Resolve)
	admin.Post("/reports/:id/dismiss", capability(models.CapManageReports), reportHandler.Dismiss)

	admin.Get("/tickets", capability(models.CapManageTickets), ticketHandler.ListTickets)
	admin.Put("/tickets/:id/status", capability(models.CapManageTickets), ticketHandler.UpdateStatus)
	admin.Put("/tickets/:id/assign", capability(models.CapManageTickets), ticketHandler.Assign)

	admin.Get("/moderation/stats", capability(models.CapViewAnalytics), statsHandler.GetStats)

	admin.Post("/moderators", capability(models.CapManageModerators), moderatorHandler.AddModerator)
	admin.Get("/moderators", capability(models.CapManageModerators), moderatorHandler.ListModerators)
	admin.Put("/moderators/:id/permissions", capability(models.CapManageModerators), moderatorHandler.UpdatePermissions)
	admin.Delete("/moderators/:id", capability(models.CapManageModerators), moderatorHandler.RemoveModerator)
}
