package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/utils"
)

// AttachJWTLocals copies the parsed claims into request locals so handlers
// can read userId/role without touching the token again.
func AttachJWTLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Locals("claims")
		if raw == nil {
			return fiber.ErrUnauthorized
		}

		claims, ok := raw.(*utils.Claims)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if claims.UserID == 0 {
			return fiber.ErrUnauthorized
		}

		c.Locals("userId", claims.UserID)
		c.Locals("openId", claims.OpenID)
		c.Locals("role", strings.ToLower(strings.TrimSpace(claims.Role)))

		return c.Next()
	}
}
