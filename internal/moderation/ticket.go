package moderation

import (
	"strings"
	"unicode/utf8"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// CreateTicketInput is the support ticket intake payload.
type CreateTicketInput struct {
	UserID   uuid.UUID
	Subject  string
	Message  string
	Category models.TicketCategory
}

// CreateTicket validates the payload and stores a fresh open ticket with an
// empty response thread.
func (e *Engine) CreateTicket(in CreateTicketInput) (models.SupportTicket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if in.UserID == uuid.Nil {
		return models.SupportTicket{}, validationf("User is required")
	}
	// Limits count characters, not bytes; most input here is Azerbaijani.
	subject := strings.TrimSpace(in.Subject)
	if n := utf8.RuneCountInString(subject); n < 5 || n > 200 {
		return models.SupportTicket{}, validationf("Subject must be between 5 and 200 characters")
	}
	message := strings.TrimSpace(in.Message)
	if n := utf8.RuneCountInString(message); n < 10 || n > 2000 {
		return models.SupportTicket{}, validationf("Message must be between 10 and 2000 characters")
	}
	if !in.Category.Valid() {
		return models.SupportTicket{}, validationf("Invalid ticket category %q", in.Category)
	}

	now := e.now()
	ticket := models.SupportTicket{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Subject:   subject,
		Message:   message,
		Category:  in.Category,
		Status:    models.TicketStatusOpen,
		Responses: []models.SupportResponse{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.store.SaveTicket(&ticket); err != nil {
		return models.SupportTicket{}, err
	}
	e.tickets[ticket.ID] = &ticket
	return copyTicket(&ticket), nil
}

// UpdateTicketStatus writes any legal status value; transitions are not
// graph-enforced. Moving to resolved or closed requires a resolution, either
// passed here or already on the ticket.
func (e *Engine) UpdateTicketStatus(ticketID uuid.UUID, status models.TicketStatus, resolution string) (models.SupportTicket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[ticketID]
	if !ok {
		return models.SupportTicket{}, &NotFoundError{Kind: "ticket", ID: ticketID}
	}
	if !status.Valid() {
		return models.SupportTicket{}, validationf("Invalid ticket status %q", status)
	}
	resolution = strings.TrimSpace(resolution)
	if n := utf8.RuneCountInString(resolution); resolution != "" && (n < 10 || n > 1000) {
		return models.SupportTicket{}, validationf("Resolution must be between 10 and 1000 characters")
	}
	if status == models.TicketStatusResolved || status == models.TicketStatusClosed {
		if resolution == "" && t.Resolution == "" {
			return models.SupportTicket{}, validationf("Resolution is required to mark a ticket %s", status)
		}
	}

	updated := copyTicket(t)
	updated.Status = status
	if resolution != "" {
		updated.Resolution = resolution
	}
	updated.UpdatedAt = e.now()

	if err := e.store.SaveTicket(&updated); err != nil {
		return models.SupportTicket{}, err
	}
	e.tickets[ticketID] = &updated
	return copyTicket(&updated), nil
}

// AssignTicket hands a ticket to a moderator holding manage_tickets and
// forces it into in_progress.
func (e *Engine) AssignTicket(ticketID, moderatorID uuid.UUID) (models.SupportTicket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[ticketID]
	if !ok {
		return models.SupportTicket{}, &NotFoundError{Kind: "ticket", ID: ticketID}
	}
	if _, ok := e.moderators[moderatorID]; !ok {
		return models.SupportTicket{}, &NotFoundError{Kind: "moderator", ID: moderatorID}
	}
	if err := e.requirePermissionLocked(moderatorID, models.CapManageTickets); err != nil {
		return models.SupportTicket{}, err
	}

	updated := copyTicket(t)
	updated.AssignedModeratorID = &moderatorID
	updated.Status = models.TicketStatusInProgress
	updated.UpdatedAt = e.now()

	if err := e.store.SaveTicket(&updated); err != nil {
		return models.SupportTicket{}, err
	}
	e.tickets[ticketID] = &updated
	return copyTicket(&updated), nil
}

// TicketResponseInput is one reply to a ticket thread.
type TicketResponseInput struct {
	ResponderID   uuid.UUID
	ResponderRole models.Role
	Message       string
}

// AddTicketResponse appends a response to the ticket thread. The ticket owner
// may always respond; moderator and admin responders need manage_tickets;
// anyone else is rejected. A staff reply to an open ticket doubles as
// assignment: the ticket moves to in_progress under the responder.
func (e *Engine) AddTicketResponse(ticketID uuid.UUID, in TicketResponseInput) (models.SupportTicket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[ticketID]
	if !ok {
		return models.SupportTicket{}, &NotFoundError{Kind: "ticket", ID: ticketID}
	}
	if in.ResponderID == uuid.Nil {
		return models.SupportTicket{}, validationf("Responder is required")
	}
	message := strings.TrimSpace(in.Message)
	if n := utf8.RuneCountInString(message); n < 5 || n > 2000 {
		return models.SupportTicket{}, validationf("Message must be between 5 and 2000 characters")
	}

	staff := in.ResponderRole == models.RoleModerator || in.ResponderRole == models.RoleAdmin
	switch {
	case in.ResponderID == t.UserID:
		// Owner may always respond to their own ticket.
	case staff:
		if err := e.requirePermissionLocked(in.ResponderID, models.CapManageTickets); err != nil {
			return models.SupportTicket{}, err
		}
	default:
		return models.SupportTicket{}, &PermissionDeniedError{
			ActorID: in.ResponderID,
			Message: "You cannot respond to a ticket you do not own",
		}
	}

	now := e.now()
	updated := copyTicket(t)
	updated.Responses = append(updated.Responses, models.SupportResponse{
		ID:            uuid.New(),
		TicketID:      ticketID,
		Position:      len(updated.Responses),
		Message:       message,
		ResponderID:   in.ResponderID,
		ResponderRole: in.ResponderRole,
		CreatedAt:     now,
	})
	if staff && t.Status == models.TicketStatusOpen {
		// First staff reply doubles as assignment.
		responder := in.ResponderID
		updated.Status = models.TicketStatusInProgress
		updated.AssignedModeratorID = &responder
	}
	updated.UpdatedAt = now

	if err := e.store.SaveTicket(&updated); err != nil {
		return models.SupportTicket{}, err
	}
	e.tickets[ticketID] = &updated
	return copyTicket(&updated), nil
}

// TicketsByStatus returns copies of all tickets in the given status, newest
// first.
func (e *Engine) TicketsByStatus(status models.TicketStatus) []models.SupportTicket {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.SupportTicket
	for _, t := range e.tickets {
		if t.Status == status {
			out = append(out, copyTicket(t))
		}
	}
	sortTicketsNewestFirst(out)
	return out
}

// TicketsByModerator returns copies of all tickets assigned to the moderator,
// newest first.
func (e *Engine) TicketsByModerator(moderatorID uuid.UUID) []models.SupportTicket {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.SupportTicket
	for _, t := range e.tickets {
		if t.AssignedModeratorID != nil && *t.AssignedModeratorID == moderatorID {
			out = append(out, copyTicket(t))
		}
	}
	sortTicketsNewestFirst(out)
	return out
}

// TicketsByUser returns copies of the user's own tickets, newest first.
func (e *Engine) TicketsByUser(userID uuid.UUID) []models.SupportTicket {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.SupportTicket
	for _, t := range e.tickets {
		if t.UserID == userID {
			out = append(out, copyTicket(t))
		}
	}
	sortTicketsNewestFirst(out)
	return out
}
