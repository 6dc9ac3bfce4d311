package moderation

import (
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// HasPermission reports whether the actor holds the capability. Unknown
// actors and plain users never do; admins always do; moderators do iff the
// capability is in their permission set.
func (e *Engine) HasPermission(actorID uuid.UUID, cap models.Capability) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasPermissionLocked(actorID, cap)
}

func (e *Engine) hasPermissionLocked(actorID uuid.UUID, cap models.Capability) bool {
	m, ok := e.moderators[actorID]
	if !ok {
		return false
	}
	return m.HasCapability(cap)
}

// RequirePermission is the single gate used by restricted mutations.
func (e *Engine) RequirePermission(actorID uuid.UUID, cap models.Capability) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requirePermissionLocked(actorID, cap)
}

func (e *Engine) requirePermissionLocked(actorID uuid.UUID, cap models.Capability) error {
	if !e.hasPermissionLocked(actorID, cap) {
		return &PermissionDeniedError{ActorID: actorID, Capability: cap}
	}
	return nil
}
