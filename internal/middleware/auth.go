package middleware

import (
	"github.com/Araz9999/naxtap-moderation/internal/config"
	"github.com/Araz9999/naxtap-moderation/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies tokens issued by the marketplace auth backend. This
// service never issues tokens itself.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// JWTOrOpsToken is JWTProtected with a carve-out for a valid ops token, so
// registry recovery on a locked-out installation does not need a staff JWT.
// Endpoints that derive the actor from JWT claims still reject ops-token-only
// requests.
func JWTOrOpsToken(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		Filter: func(c *fiber.Ctx) bool {
			return OpsTokenValid(c, cfg)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
