package notify

import (
	"log/slog"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/go-resty/resty/v2"
)

// WebhookNotifier posts lifecycle events as JSON to the marketplace backend,
// which owns push/email fan-out to end users.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &WebhookNotifier{client: client, url: url}
}

type webhookEvent struct {
	Event  string                `json:"event"`
	Report *models.Report        `json:"report,omitempty"`
	Ticket *models.SupportTicket `json:"ticket,omitempty"`
}

func (w *WebhookNotifier) ReportStatusChanged(r models.Report) {
	w.post(webhookEvent{Event: "report.status_changed", Report: &r})
}

func (w *WebhookNotifier) TicketUpdated(t models.SupportTicket) {
	w.post(webhookEvent{Event: "ticket.updated", Ticket: &t})
}

func (w *WebhookNotifier) post(event webhookEvent) {
	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(w.url)
	if err != nil {
		slog.Error("webhook notification failed", "event", event.Event, "error", err)
		return
	}
	if resp.IsError() {
		slog.Error("webhook notification rejected", "event", event.Event, "status", resp.StatusCode())
	}
}
