package moderation

import (
	"strings"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// AddModerator registers a user as a moderator with the given capability set.
func (e *Engine) AddModerator(userID uuid.UUID, permissions []models.Capability) (models.Moderator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if userID == uuid.Nil {
		return models.Moderator{}, validationf("User is required")
	}
	if _, exists := e.moderators[userID]; exists {
		return models.Moderator{}, validationf("User %s is already a moderator", userID)
	}
	if err := validatePermissions(permissions); err != nil {
		return models.Moderator{}, err
	}

	now := e.now()
	mod := models.Moderator{
		ID:           userID,
		Role:         models.RoleModerator,
		AssignedDate: now,
		Permissions:  permissions,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := e.store.SaveModerator(&mod); err != nil {
		return models.Moderator{}, err
	}
	e.moderators[userID] = &mod
	e.recomputeStatsLocked()
	return copyModerator(&mod), nil
}

// RemoveModerator deletes a registry entry. The registry must never become
// empty, so the last entry cannot be removed.
func (e *Engine) RemoveModerator(userID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.moderators[userID]; !ok {
		return &NotFoundError{Kind: "moderator", ID: userID}
	}
	if len(e.moderators) <= 1 {
		return &InvariantViolationError{Message: "Cannot remove the last moderator"}
	}

	if err := e.store.DeleteModerator(userID); err != nil {
		return err
	}
	delete(e.moderators, userID)
	e.recomputeStatsLocked()
	return nil
}

// UpdateModeratorPermissions replaces a moderator's capability set wholesale.
// Admin entries carry no explicit set and cannot be updated.
func (e *Engine) UpdateModeratorPermissions(userID uuid.UUID, permissions []models.Capability) (models.Moderator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.moderators[userID]
	if !ok {
		return models.Moderator{}, &NotFoundError{Kind: "moderator", ID: userID}
	}
	if m.Role != models.RoleModerator {
		return models.Moderator{}, validationf("Permissions of an admin are implicit and cannot be updated")
	}
	if err := validatePermissions(permissions); err != nil {
		return models.Moderator{}, err
	}

	updated := *m
	updated.Permissions = permissions
	updated.UpdatedAt = e.now()

	if err := e.store.SaveModerator(&updated); err != nil {
		return models.Moderator{}, err
	}
	e.moderators[userID] = &updated
	return copyModerator(&updated), nil
}

// Moderators returns copies of all registry entries.
func (e *Engine) Moderators() []models.Moderator {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Moderator, 0, len(e.moderators))
	for _, m := range e.moderators {
		out = append(out, copyModerator(m))
	}
	return out
}

// GetModerator returns a copy of one registry entry, or a NotFoundError.
func (e *Engine) GetModerator(userID uuid.UUID) (models.Moderator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.moderators[userID]
	if !ok {
		return models.Moderator{}, &NotFoundError{Kind: "moderator", ID: userID}
	}
	return copyModerator(m), nil
}

func validatePermissions(permissions []models.Capability) error {
	if len(permissions) == 0 {
		return validationf("At least one permission is required")
	}
	var invalid []string
	for _, p := range permissions {
		if !p.Valid() {
			invalid = append(invalid, string(p))
		}
	}
	if len(invalid) > 0 {
		return validationf("Invalid permissions: %s", strings.Join(invalid, ", "))
	}
	return nil
}
