package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Capability is one of a closed set of named permissions. Moderators carry an
// explicit subset; admins implicitly hold all of them.
type Capability string

const (
	CapManageReports    Capability = "manage_reports"
	CapManageUsers      Capability = "manage_users"
	CapManageListings   Capability = "manage_listings"
	CapManageStores     Capability = "manage_stores"
	CapManageTickets    Capability = "manage_tickets"
	CapViewAnalytics    Capability = "view_analytics"
	CapManageModerators Capability = "manage_moderators"
)

var Capabilities = []Capability{
	CapManageReports, CapManageUsers, CapManageListings, CapManageStores,
	CapManageTickets, CapViewAnalytics, CapManageModerators,
}

func (c Capability) Valid() bool {
	for _, v := range Capabilities {
		if c == v {
			return true
		}
	}
	return false
}

// Moderator is the registry projection of a user who may act on reports and
// tickets. ID is the user's id in the external auth system. Permissions is
// non-empty for role moderator and ignored for role admin.
type Moderator struct {
	ID                  uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	Role                Role                            `gorm:"size:16;not null" json:"role"`
	AssignedDate        time.Time                       `json:"assigned_date"`
	Permissions         datatypes.JSONSlice[Capability] `gorm:"type:jsonb" json:"permissions"`
	HandledReports      int                             `gorm:"not null;default:0" json:"handled_reports"`
	AverageResponseTime float64                         `gorm:"not null;default:0" json:"average_response_time"`
	IsActive            bool                            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time                       `json:"created_at"`
	UpdatedAt           time.Time                       `json:"updated_at"`
}

func (m *Moderator) HasCapability(cap Capability) bool {
	if m.Role == RoleAdmin {
		return true
	}
	if m.Role != RoleModerator {
		return false
	}
	for _, p := range m.Permissions {
		if p == cap {
			return true
		}
	}
	return false
}
