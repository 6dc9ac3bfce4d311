package models

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen        TicketStatus = "open"
	TicketStatusInProgress  TicketStatus = "in_progress"
	TicketStatusWaitingUser TicketStatus = "waiting_user"
	TicketStatusResolved    TicketStatus = "resolved"
	TicketStatusClosed      TicketStatus = "closed"
)

var TicketStatuses = []TicketStatus{
	TicketStatusOpen, TicketStatusInProgress, TicketStatusWaitingUser,
	TicketStatusResolved, TicketStatusClosed,
}

func (s TicketStatus) Valid() bool {
	for _, v := range TicketStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type TicketCategory string

const (
	TicketCategoryTechnical TicketCategory = "technical"
	TicketCategoryBilling   TicketCategory = "billing"
	TicketCategoryAccount   TicketCategory = "account"
	TicketCategoryListing   TicketCategory = "listing"
	TicketCategoryStore     TicketCategory = "store"
	TicketCategoryReport    TicketCategory = "report"
	TicketCategoryOther     TicketCategory = "other"
)

var TicketCategories = []TicketCategory{
	TicketCategoryTechnical, TicketCategoryBilling, TicketCategoryAccount,
	TicketCategoryListing, TicketCategoryStore, TicketCategoryReport, TicketCategoryOther,
}

func (c TicketCategory) Valid() bool {
	for _, v := range TicketCategories {
		if c == v {
			return true
		}
	}
	return false
}

// SupportTicket is a user help request with an append-only response thread.
type SupportTicket struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject             string            `gorm:"size:200;not null" json:"subject"`
	Message             string            `gorm:"size:2000;not null" json:"message"`
	Category            TicketCategory    `gorm:"size:32;not null;index" json:"category"`
	Status              TicketStatus      `gorm:"size:16;not null;default:'open';index" json:"status"`
	Resolution          string            `gorm:"size:1000" json:"resolution,omitempty"`
	AssignedModeratorID *uuid.UUID        `gorm:"type:uuid;index" json:"assigned_moderator_id,omitempty"`
	Responses           []SupportResponse `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"responses"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// SupportResponse is one entry in a ticket thread. Responses are appended in
// order and never edited or removed; Position preserves insertion order.
type SupportResponse struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID      uuid.UUID `gorm:"type:uuid;not null;index" json:"ticket_id"`
	Position      int       `gorm:"not null" json:"position"`
	Message       string    `gorm:"size:2000;not null" json:"message"`
	ResponderID   uuid.UUID `gorm:"type:uuid;not null" json:"responder_id"`
	ResponderRole Role      `gorm:"size:16;not null" json:"responder_role"`
	CreatedAt     time.Time `json:"created_at"`
}
