package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the email endpoints behind the authoritative token
// verification middleware.
func RegisterRoutes(app *fiber.App, h *EmailHandler, requireAuth fiber.Handler) {
	app.Post("/api/generate-email", requireAuth, h.Generate)

	emails := app.Group("/api/emails", requireAuth)
	emails.Get("/", h.History)
	emails.Delete("/", h.Delete)
}
