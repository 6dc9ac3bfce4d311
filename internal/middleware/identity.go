package middleware

import (
	"errors"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user's UUID from JWT claims.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// GetRole extracts the caller's role claim; absent or unknown claims are
// treated as a plain user.
func GetRole(c *fiber.Ctx) models.Role {
	claims, err := tokenClaims(c)
	if err != nil {
		return models.RoleUser
	}
	role, _ := claims["role"].(string)
	switch models.Role(role) {
	case models.RoleModerator:
		return models.RoleModerator
	case models.RoleAdmin:
		return models.RoleAdmin
	default:
		return models.RoleUser
	}
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
