package store

import (
	"testing"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Report{},
		&models.SupportTicket{},
		&models.SupportResponse{},
		&models.Moderator{},
	))
	return NewGormStore(db)
}

func TestReportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	report := models.Report{
		ID:                uuid.New(),
		ReporterID:        uuid.New(),
		ReportedListingID: "listing-42",
		Type:              models.ReportTypeSpam,
		Reason:            "Same listing posted twenty times",
		Priority:          models.PriorityMedium,
		Status:            models.ReportStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, s.SaveReport(&report))

	// Saving again with changed fields must update, not duplicate.
	mod := uuid.New()
	report.Status = models.ReportStatusResolved
	report.Resolution = "Duplicate listings removed"
	report.AssignedModeratorID = &mod
	require.NoError(t, s.SaveReport(&report))

	loaded, err := s.LoadReports()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, report.ID, loaded[0].ID)
	assert.Equal(t, models.ReportStatusResolved, loaded[0].Status)
	assert.Equal(t, "Duplicate listings removed", loaded[0].Resolution)
	require.NotNil(t, loaded[0].AssignedModeratorID)
	assert.Equal(t, mod, *loaded[0].AssignedModeratorID)
}

func TestTicketRoundTripKeepsResponseOrder(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	ticket := models.SupportTicket{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Subject:   "Listing photos not uploading",
		Message:   "Uploads hang at 90 percent every time",
		Category:  models.TicketCategoryTechnical,
		Status:    models.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.SaveTicket(&ticket))

	staff := uuid.New()
	for i, msg := range []string{"First reply in the thread", "Second reply in the thread", "Third reply in the thread"} {
		ticket.Responses = append(ticket.Responses, models.SupportResponse{
			ID:            uuid.New(),
			TicketID:      ticket.ID,
			Position:      i,
			Message:       msg,
			ResponderID:   staff,
			ResponderRole: models.RoleModerator,
			CreatedAt:     now.Add(time.Duration(i) * time.Minute),
		})
		ticket.Status = models.TicketStatusInProgress
		require.NoError(t, s.SaveTicket(&ticket))
	}

	loaded, err := s.LoadTickets()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, models.TicketStatusInProgress, loaded[0].Status)
	require.Len(t, loaded[0].Responses, 3)
	for i, r := range loaded[0].Responses {
		assert.Equal(t, i, r.Position)
	}
	assert.Equal(t, "First reply in the thread", loaded[0].Responses[0].Message)
	assert.Equal(t, "Third reply in the thread", loaded[0].Responses[2].Message)
}

func TestTicketSaveDoesNotDuplicateResponses(t *testing.T) {
	s := newTestStore(t)

	ticket := models.SupportTicket{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Subject:  "Refund request for order",
		Message:  "Order arrived damaged, asking for a refund",
		Category: models.TicketCategoryBilling,
		Status:   models.TicketStatusOpen,
		Responses: []models.SupportResponse{{
			ID:            uuid.New(),
			Position:      0,
			Message:       "Photos of the damage attached",
			ResponderID:   uuid.New(),
			ResponderRole: models.RoleUser,
		}},
	}
	ticket.Responses[0].TicketID = ticket.ID

	// Saving the same thread twice must leave a single row.
	require.NoError(t, s.SaveTicket(&ticket))
	require.NoError(t, s.SaveTicket(&ticket))

	loaded, err := s.LoadTickets()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Len(t, loaded[0].Responses, 1)
}

func TestModeratorRoundTripAndDelete(t *testing.T) {
	s := newTestStore(t)

	mod := models.Moderator{
		ID:          uuid.New(),
		Role:        models.RoleModerator,
		Permissions: []models.Capability{models.CapManageReports, models.CapManageTickets},
		IsActive:    true,
	}
	require.NoError(t, s.SaveModerator(&mod))

	mod.Permissions = []models.Capability{models.CapViewAnalytics}
	require.NoError(t, s.SaveModerator(&mod))

	loaded, err := s.LoadModerators()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, mod.ID, loaded[0].ID)
	assert.Equal(t, []models.Capability{models.CapViewAnalytics}, []models.Capability(loaded[0].Permissions))

	require.NoError(t, s.DeleteModerator(mod.ID))
	loaded, err = s.LoadModerators()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
