package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", h.SignUp)
	auth.Post("/signin", h.SignIn)
	auth.Post("/signout", h.SignOut)
	auth.Get("/check", h.Check)
	auth.Post("/forgot-password", h.ForgotPassword)
}
