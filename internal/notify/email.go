package notify

import (
	"fmt"
	"log/slog"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailNotifier alerts the support inbox about urgent report activity. End
// user email belongs to the marketplace backend, so only ops mail is sent
// from here.
type EmailNotifier struct {
	apiKey   string
	from     *mail.Email
	opsEmail string
}

func NewEmailNotifier(apiKey, fromEmail, fromName, opsEmail string) *EmailNotifier {
	return &EmailNotifier{
		apiKey:   apiKey,
		from:     mail.NewEmail(fromName, fromEmail),
		opsEmail: opsEmail,
	}
}

func (e *EmailNotifier) ReportStatusChanged(r models.Report) {
	if r.Priority != models.PriorityUrgent || r.Status != models.ReportStatusPending {
		return
	}
	subject := fmt.Sprintf("[urgent] New %s report %s", r.Type, r.ID)
	body := fmt.Sprintf("An urgent %s report was filed.\n\nReason: %s\n\nReport ID: %s", r.Type, r.Reason, r.ID)
	e.send(subject, body)
}

func (e *EmailNotifier) TicketUpdated(models.SupportTicket) {}

func (e *EmailNotifier) send(subject, body string) {
	to := mail.NewEmail("Moderation Ops", e.opsEmail)
	message := mail.NewSingleEmail(e.from, subject, to, body, "")
	client := sendgrid.NewSendClient(e.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		slog.Error("ops email failed", "error", err)
		return
	}
	if resp.StatusCode >= 400 {
		slog.Error("ops email rejected", "status", resp.StatusCode, "body", resp.Body)
	}
}
