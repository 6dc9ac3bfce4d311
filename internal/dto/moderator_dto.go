package dto

import "github.com/google/uuid"

type AddModeratorRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Permissions []string  `json:"permissions" validate:"required,min=1"`
}

type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1"`
}
