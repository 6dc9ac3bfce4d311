package moderation

import (
	"testing"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPermission(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	admin := seedModerator(engine, store, models.RoleAdmin)
	mod := seedModerator(engine, store, models.RoleModerator, models.CapManageReports, models.CapViewAnalytics)
	stranger := uuid.New()

	for _, cap := range models.Capabilities {
		// Admins implicitly hold every capability.
		assert.True(t, engine.HasPermission(admin, cap), "admin should hold %s", cap)
		assert.False(t, engine.HasPermission(stranger, cap), "unknown actor should not hold %s", cap)
	}

	assert.True(t, engine.HasPermission(mod, models.CapManageReports))
	assert.True(t, engine.HasPermission(mod, models.CapViewAnalytics))
	assert.False(t, engine.HasPermission(mod, models.CapManageTickets))
	assert.False(t, engine.HasPermission(mod, models.CapManageModerators))
}

func TestHasPermissionNonStaffRole(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	// A registry entry with a plain user role never passes, even with an
	// explicit permission set.
	id := uuid.New()
	entry := models.Moderator{ID: id, Role: models.RoleUser, Permissions: []models.Capability{models.CapManageReports}}
	store.moderators[id] = entry
	engine.moderators[id] = &entry

	for _, cap := range models.Capabilities {
		assert.False(t, engine.HasPermission(id, cap))
	}
}

func TestRequirePermission(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleModerator, models.CapManageTickets)

	require.NoError(t, engine.RequirePermission(mod, models.CapManageTickets))

	err := engine.RequirePermission(mod, models.CapManageReports)
	var denied *PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, mod, denied.ActorID)
	assert.Equal(t, models.CapManageReports, denied.Capability)
	assert.Contains(t, err.Error(), "manage_reports")
}
