package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adarsh0128/Mailgic-AI/pkg/constant"
)

// UserIDKey is the fiber locals key under which RequireAuth stores the
// verified user id.
const UserIDKey = "userID"

// SessionGate redirects requests that hit a protected prefix without a
// session cookie. It checks cookie presence only and never parses the
// token; cryptographic verification belongs to RequireAuth and the
// session-check endpoint. A cheap first filter, not the authority of truth.
func SessionGate(protectedPrefixes []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) {
				if c.Cookies(constant.SessionCookieName) == "" {
					return c.Redirect(constant.SignInRedirectPath, fiber.StatusFound)
				}
				break
			}
		}

		return c.Next()
	}
}

// RequireAuth verifies the session cookie and stores the user id in request
// locals. All failure modes produce the same 401 response.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(constant.SessionCookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constant.MsgUnauthorized})
		}

		claims, err := h.tokenService.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constant.MsgUnauthorized})
		}

		c.Locals(UserIDKey, claims.UserID)

		return c.Next()
	}
}
