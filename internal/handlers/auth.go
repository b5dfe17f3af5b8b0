package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/middleware"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
	"github.com/yasseriouss/yasser-portfolio-new/internal/utils"
)

type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
	Expires   int
}

// Me resolves the current identity from the session cookie. Anonymous or
// expired sessions are not errors; the identity is simply null.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	tokenStr := c.Cookies(middleware.SessionCookie)
	if tokenStr == "" {
		return okData(c, nil)
	}

	claims, err := utils.ParseJWT(h.JWTSecret, tokenStr)
	if err != nil {
		return okData(c, nil)
	}

	user, err := h.Store.GetUserByID(claims.UserID)
	if err != nil || user == nil {
		return okData(c, nil)
	}
	return okData(c, user)
}

// Logout clears the session cookie. Nothing server-side to tear down; the
// token simply stops being presented.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"success": true})
}
