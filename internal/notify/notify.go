// Package notify dispatches lifecycle events to external channels. The
// moderation engine itself stays notification-free; handlers fire these after
// a successful transition.
package notify

import "github.com/Araz9999/naxtap-moderation/internal/models"

type Notifier interface {
	ReportStatusChanged(r models.Report)
	TicketUpdated(t models.SupportTicket)
}

// Noop is the default when no channel is configured.
type Noop struct{}

func (Noop) ReportStatusChanged(models.Report)  {}
func (Noop) TicketUpdated(models.SupportTicket) {}

// Multi fans an event out to every configured channel.
type Multi []Notifier

func (m Multi) ReportStatusChanged(r models.Report) {
	for _, n := range m {
		n.ReportStatusChanged(r)
	}
}

func (m Multi) TicketUpdated(t models.SupportTicket) {
	for _, n := range m {
		n.TicketUpdated(t)
	}
}
