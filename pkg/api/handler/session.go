package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionCookie = "session_id"
	SessionHeader = "X-Session-ID"

	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// sessionID returns the caller's session, issuing a cookie for new visitors.
func sessionID(c *fiber.Ctx) string {
	if id := c.Get(SessionHeader); id != "" {
		return id
	}
	if id := c.Cookies(SessionCookie); id != "" {
		return id
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return id
}
