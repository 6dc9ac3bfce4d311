package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	ReportedUserID    *uuid.UUID `json:"reported_user_id,omitempty"`
	ReportedListingID string     `json:"reported_listing_id,omitempty"`
	ReportedStoreID   string     `json:"reported_store_id,omitempty"`
	Type              string     `json:"type" validate:"required"`
	Reason            string     `json:"reason" validate:"required"`
	Description       string     `json:"description,omitempty"`
	Priority          string     `json:"priority,omitempty"`
}

type UpdateReportStatusRequest struct {
	Status      string     `json:"status" validate:"required"`
	ModeratorID *uuid.UUID `json:"moderator_id,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type AssignReportRequest struct {
	ModeratorID uuid.UUID `json:"moderator_id" validate:"required"`
}

type ResolveReportRequest struct {
	Resolution string `json:"resolution" validate:"required"`
}

type DismissReportRequest struct {
	Reason string `json:"reason" validate:"required"`
}
