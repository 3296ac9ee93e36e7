package server

import (
	"errors"
	"time"

	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was
// already committed by a helper. Handlers must return nil (not this
// error) to avoid Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// sessionCookieMaxAge is one day, matching the token TTL.
const sessionCookieMaxAge = 86400

// parseID extracts a route parameter by name as a positive uint. On
// failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid parameter!",
		})
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// callerID returns the authenticated user id set by the auth middleware.
func (s *Server) callerID(c *fiber.Ctx) uint {
	uid, _ := middleware.UserID(c)
	return uid
}

// setSessionCookie issues the session cookie carrying a freshly signed
// token. Secure is set only in production so local HTTP development
// keeps working.
func (s *Server) setSessionCookie(c *fiber.Ctx, signed string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    signed,
		MaxAge:   sessionCookieMaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.IsProduction(),
	})
}

// clearSessionCookie overwrites the session cookie with an immediately
// expiring one. Tokens stay valid until expiry; sign-out is stateless.
func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    c.Cookies(middleware.SessionCookie),
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.IsProduction(),
	})
}

// ok wraps response data in the standard envelope.
func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"data":    data,
		"message": "ok",
	})
}

// okMessage wraps response data with a custom message.
func okMessage(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(fiber.Map{
		"data":    data,
		"message": message,
	})
}

// fail delegates to the taxonomy-driven error response.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, err)
}
