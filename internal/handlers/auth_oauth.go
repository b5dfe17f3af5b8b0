package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/yasseriouss/yasser-portfolio-new/internal/middleware"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
	"github.com/yasseriouss/yasser-portfolio-new/internal/utils"
)

// OAuthHandler runs the provider login flow. The callback upserts the user
// by the provider-issued subject id; the owner identity comes out of that
// upsert with the admin role.
type OAuthHandler struct {
	Store           *store.Store
	JWTSecret       string
	Expires         int
	ClientID        string
	ClientSecret    string
	RedirectURL     string
	FrontendBaseURL string
}

func (h *OAuthHandler) oauthCfg() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}
}

func (h *OAuthHandler) Start(c *fiber.Ctx) error {
	next := c.Query("next", "/")
	st := uuid.NewString()

	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    st,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_next",
		Value:    next,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})

	return c.Redirect(h.oauthCfg().AuthCodeURL(st), http.StatusTemporaryRedirect)
}

type providerUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing code/state")
	}

	stCookie := c.Cookies("oauth_state")
	next := c.Cookies("oauth_next")
	if next == "" {
		next = "/"
	}
	if stCookie == "" || stCookie != state {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid state")
	}

	tok, err := h.oauthCfg().Exchange(c.Context(), code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to exchange code")
	}

	client := h.oauthCfg().Client(c.Context(), tok)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to fetch userinfo")
	}
	defer resp.Body.Close()

	var pu providerUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to decode userinfo")
	}
	if pu.ID == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Subject id not found from provider")
	}

	openID := "google:" + pu.ID
	name := strings.TrimSpace(pu.Name)
	email := strings.ToLower(strings.TrimSpace(pu.Email))
	method := "google"

	// Role intentionally omitted: the owner bootstrap inside the upsert is
	// the only path that assigns admin.
	if err := h.Store.UpsertUser(store.UserUpsert{
		OpenID:      openID,
		Name:        &name,
		Email:       &email,
		LoginMethod: &method,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save user")
	}

	user, err := h.Store.GetUserByOpenID(openID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load user")
	}

	token, err := utils.SignJWT(h.JWTSecret, user.ID, user.OpenID, string(user.Role), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to sign session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})

	return c.Redirect(h.FrontendBaseURL+next, http.StatusTemporaryRedirect)
}
