package dto

import "github.com/google/uuid"

type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type UpdateTicketStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	Resolution string `json:"resolution,omitempty"`
}

type AssignTicketRequest struct {
	ModeratorID uuid.UUID `json:"moderator_id" validate:"required"`
}

type AddTicketResponseRequest struct {
	Message string `json:"message" validate:"required"`
}
