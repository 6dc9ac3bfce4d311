package moderation

import (
	"fmt"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// ValidationError reports malformed or out-of-range input. The message names
// the first violated constraint and is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing report, ticket or moderator.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// PermissionDeniedError reports an actor lacking the capability required for
// the attempted mutation. Never downgraded or retried.
type PermissionDeniedError struct {
	ActorID    uuid.UUID
	Capability models.Capability
	Message    string
}

func (e *PermissionDeniedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("permission denied: actor %s lacks capability %q", e.ActorID, e.Capability)
}

// InvariantViolationError reports a structural rule breach, such as removing
// the last moderator.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string { return e.Message }
