package models

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportTypeSpam                 ReportType = "spam"
	ReportTypeInappropriateContent ReportType = "inappropriate_content"
	ReportTypeFakeListing          ReportType = "fake_listing"
	ReportTypeHarassment           ReportType = "harassment"
	ReportTypeFraud                ReportType = "fraud"
	ReportTypeCopyright            ReportType = "copyright"
	ReportTypeOther                ReportType = "other"
)

var ReportTypes = []ReportType{
	ReportTypeSpam, ReportTypeInappropriateContent, ReportTypeFakeListing,
	ReportTypeHarassment, ReportTypeFraud, ReportTypeCopyright, ReportTypeOther,
}

func (t ReportType) Valid() bool {
	for _, v := range ReportTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
	PriorityUrgent ReportPriority = "urgent"
)

var ReportPriorities = []ReportPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p ReportPriority) Valid() bool {
	for _, v := range ReportPriorities {
		if p == v {
			return true
		}
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusInReview  ReportStatus = "in_review"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

var ReportStatuses = []ReportStatus{
	ReportStatusPending, ReportStatusInReview, ReportStatusResolved, ReportStatusDismissed,
}

func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Report is a user complaint against a user, listing or store. Reports are
// never deleted; resolved and dismissed ones feed the moderation statistics.
type Report struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportedUserID      *uuid.UUID     `gorm:"type:uuid;index" json:"reported_user_id,omitempty"`
	ReportedListingID   string         `gorm:"size:64;index" json:"reported_listing_id,omitempty"`
	ReportedStoreID     string         `gorm:"size:64;index" json:"reported_store_id,omitempty"`
	Type                ReportType     `gorm:"size:32;not null;index" json:"type"`
	Reason              string         `gorm:"size:1000;not null" json:"reason"`
	Description         string         `gorm:"size:2000" json:"description,omitempty"`
	Priority            ReportPriority `gorm:"size:16;not null;default:'medium';index" json:"priority"`
	Status              ReportStatus   `gorm:"size:16;not null;default:'pending';index" json:"status"`
	Resolution          string         `gorm:"size:1000" json:"resolution,omitempty"`
	ModeratorNotes      string         `gorm:"size:1000" json:"moderator_notes,omitempty"`
	AssignedModeratorID *uuid.UUID     `gorm:"type:uuid;index" json:"assigned_moderator_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Targeted reports must point at something.
func (r *Report) HasTarget() bool {
	return r.ReportedUserID != nil || r.ReportedListingID != "" || r.ReportedStoreID != ""
}
