package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bonifacengila/cv-portfolio/internal/services"
)

const sessionCookie = "cv_session"

type AuthHandler struct {
	sessions services.SessionService
}

func NewAuthHandler(sessions services.SessionService) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessions.Login(req.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		if !h.sessions.PasswordConfigured() {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token": session.Token,
	})
}

func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if token := sessionToken(c); token != "" {
		h.sessions.Logout(token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// RequireAuth guards the editor routes. The token comes from either the
// Authorization header or the session cookie.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := sessionToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
	session := h.sessions.Resolve(token)
	if session == nil || !session.IsAuthenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session expired or invalid",
		})
	}
	return c.Next()
}

func sessionToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies(sessionCookie)
}
