package moderation

import (
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// Store is the injected persistence boundary. The engine calls Save before
// committing a mutation to its in-memory collections, so a write is durable
// before the caller sees success. Implementations must upsert by id.
type Store interface {
	LoadReports() ([]models.Report, error)
	LoadTickets() ([]models.SupportTicket, error)
	LoadModerators() ([]models.Moderator, error)

	SaveReport(r *models.Report) error
	SaveTicket(t *models.SupportTicket) error
	SaveModerator(m *models.Moderator) error
	DeleteModerator(id uuid.UUID) error
}
