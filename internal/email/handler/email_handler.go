package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/adarsh0128/Mailgic-AI/internal/auth/handler"
	"github.com/adarsh0128/Mailgic-AI/internal/email/domain"
	"github.com/adarsh0128/Mailgic-AI/internal/email/dto"
	"github.com/adarsh0128/Mailgic-AI/internal/email/service"
	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
)

type EmailHandler struct {
	emailService *service.EmailService
	log          *logger.Logger
}

func NewEmailHandler(emailService *service.EmailService, log *logger.Logger) *EmailHandler {
	return &EmailHandler{emailService: emailService, log: log}
}

func (h *EmailHandler) Generate(c *fiber.Ctx) error {
	userID, _ := c.Locals(authhandler.UserIDKey).(string)

	var input dto.GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	out, err := h.emailService.Generate(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, autherror.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error().Err(err).Msg("email generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate or save email"})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// History lists the caller's generated emails, newest first. Optional type,
// tone and limit query parameters narrow the result.
func (h *EmailHandler) History(c *fiber.Ctx) error {
	userID, _ := c.Locals(authhandler.UserIDKey).(string)

	filter := domain.ListFilter{
		Type:  c.Query("type"),
		Tone:  c.Query("tone"),
		Limit: c.QueryInt("limit"),
	}

	emails, err := h.emailService.History(c.Context(), userID, filter)
	if err != nil {
		h.log.Error().Err(err).Msg("email history failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch email history"})
	}

	return c.Status(fiber.StatusOK).JSON(emails)
}

// Delete removes one email when an id query parameter is present, and
// clears the caller's entire history otherwise.
func (h *EmailHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals(authhandler.UserIDKey).(string)

	id := c.Query("id")
	if id == "" {
		deleted, err := h.emailService.Clear(c.Context(), userID)
		if err != nil {
			h.log.Error().Err(err).Msg("email history clear failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear email history"})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": deleted})
	}

	if err := h.emailService.Delete(c.Context(), id, userID); err != nil {
		if errors.Is(err, autherror.ErrEmailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error().Err(err).Msg("email delete failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete email"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Email deleted"})
}
