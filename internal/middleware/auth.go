// Package middleware provides authentication, logging and rate-limiting
// middleware for the application.
package middleware

import (
	"context"

	"chirp/internal/observability"
	"chirp/internal/token"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "sessionId"

// Locals keys populated by the authentication middleware.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
)

// AuthRequired enforces authentication for protected routes. It reads
// the session cookie, verifies it once, and attaches the decoded
// identity to the request. Handlers downstream never re-verify tokens.
func AuthRequired(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			observability.AuthRejections.Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not Authorized",
			})
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			observability.AuthRejections.Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not Authorized",
			})
		}

		attachIdentity(c, claims.UID, claims.Username)
		return c.Next()
	}
}

// OptionalAuth attaches the identity claim when a valid session cookie
// is present and continues anonymously otherwise. Routes that widen
// their response for authenticated callers (profile, followers,
// following) use this instead of AuthRequired.
func OptionalAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			return c.Next()
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			return c.Next()
		}

		attachIdentity(c, claims.UID, claims.Username)
		return c.Next()
	}
}

// attachIdentity stores the verified identity in Fiber locals and in
// the request context, where the context-aware logger picks it up.
// Auth runs per route, after ContextMiddleware, so the context value is
// set here rather than there.
func attachIdentity(c *fiber.Ctx, uid uint, username string) {
	c.Locals(LocalUserID, uid)
	c.Locals(LocalUsername, username)
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, uid))
}

// UserID returns the authenticated user id attached by AuthRequired or
// OptionalAuth. ok is false for anonymous requests.
func UserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals(LocalUserID).(uint)
	return uid, ok
}
