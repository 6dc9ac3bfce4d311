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

type ReportHandler struct {
	engine   *moderation.Engine
	notifier notify.Notifier
}

func NewReportHandler(engine *moderation.Engine, notifier notify.Notifier) *ReportHandler {
	return &ReportHandler{engine: engine, notifier: notifier}
}

func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	reporterID, err := middleware.GetUserID(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.engine.CreateReport(moderation.CreateReportInput{
		ReporterID:        reporterID,
		ReportedUserID:    req.ReportedUserID,
		ReportedListingID: req.ReportedListingID,
		ReportedStoreID:   req.ReportedStoreID,
		Type:              models.ReportType(req.Type),
		Reason:            req.Reason,
		Description:       req.Description,
		Priority:          models.ReportPriority(req.Priority),
	})
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("report created", "report_id", report.ID, "actor_id", reporterID, "type", report.Type)
	go h.notifier.ReportStatusChanged(report)
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	if modParam := c.Query("moderator_id"); modParam != "" {
		moderatorID, err := uuid.Parse(modParam)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid moderator ID")
		}
		return c.JSON(fiber.Map{"reports": h.engine.ReportsByModerator(moderatorID)})
	}

	status := models.ReportStatus(c.Query("status", string(models.ReportStatusPending)))
	if !status.Valid() {
		return respondError(c, fiber.StatusBadRequest, "Invalid report status")
	}
	return c.JSON(fiber.Map{"reports": h.engine.ReportsByStatus(status)})
}

func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.engine.UpdateReportStatus(reportID, models.ReportStatus(req.Status), req.ModeratorID, req.Notes)
	if err != nil {
		return respondEngineError(c, err)
	}

	go h.notifier.ReportStatusChanged(report)
	return c.JSON(report)
}

func (h *ReportHandler) Assign(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var req dto.AssignReportRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.engine.AssignReport(reportID, req.ModeratorID)
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("report assigned", "report_id", report.ID, "moderator_id", req.ModeratorID)
	return c.JSON(report)
}

func (h *ReportHandler) Resolve(c *fiber.Ctx) error {
	return h.close(c, false)
}

func (h *ReportHandler) Dismiss(c *fiber.Ctx) error {
	return h.close(c, true)
}

func (h *ReportHandler) close(c *fiber.Ctx, dismiss bool) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	moderatorID, err := middleware.GetUserID(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var report models.Report
	if dismiss {
		var req dto.DismissReportRequest
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := dto.Validate(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		report, err = h.engine.DismissReport(reportID, req.Reason, moderatorID)
	} else {
		var req dto.ResolveReportRequest
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := dto.Validate(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		report, err = h.engine.ResolveReport(reportID, req.Resolution, moderatorID)
	}
	if err != nil {
		return respondEngineError(c, err)
	}

	slog.Info("report closed", "report_id", report.ID, "actor_id", moderatorID, "status", report.Status)
	go h.notifier.ReportStatusChanged(report)
	return c.JSON(report)
}

func (h *ReportHandler) UserHistory(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	return c.JSON(h.engine.GetUserModerationHistory(userID))
}
