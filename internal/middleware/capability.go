package middleware

import (
	"github.com/Araz9999/naxtap-moderation/internal/config"
	"github.com/Araz9999/naxtap-moderation/internal/dto"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// OpsTokenValid reports whether the request carries an X-Ops-Token matching
// the configured bcrypt hash. Routes that accept it pair this with
// JWTOrOpsToken so recovery works without a JWT.
func OpsTokenValid(c *fiber.Ctx, cfg *config.Config) bool {
	if cfg.OpsTokenHash == "" {
		return false
	}
	token := c.Get("X-Ops-Token")
	if token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.OpsTokenHash), []byte(token)) == nil
}

// RequireCapability gates a route on the engine's permission model. A valid
// ops token bypasses the check for operational tooling.
func RequireCapability(engine *moderation.Engine, cfg *config.Config, cap models.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if OpsTokenValid(c, cfg) {
			return c.Next()
		}

		userID, err := GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !engine.HasPermission(userID, cap) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Missing required permission: " + string(cap),
			})
		}
		return c.Next()
	}
}
