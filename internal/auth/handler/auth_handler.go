package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/adarsh0128/Mailgic-AI/internal/auth/dto"
	"github.com/adarsh0128/Mailgic-AI/internal/auth/service"
	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
	"github.com/adarsh0128/Mailgic-AI/pkg/constant"
)

type AuthHandler struct {
	userService   *service.UserService
	tokenService  service.TokenGenerator
	secureCookies bool
	log           *logger.Logger
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, secureCookies bool, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		tokenService:  tokenService,
		secureCookies: secureCookies,
		log:           log,
	}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, token, err := h.userService.SignUp(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrEmailAndPasswordRequired),
			errors.Is(err, autherror.ErrInvalidEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, autherror.ErrEmailAlreadyRegistered):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("signup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create account"})
		}
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constant.MsgUserCreated,
		"user": dto.UserOutput{
			ID:    user.ID,
			Email: user.Email,
		},
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	token, err := h.userService.SignIn(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error().Err(err).Msg("signin failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": constant.MsgInternalFailure})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constant.MsgLoggedIn})
}

// SignOut clears the session cookie. There is no server-side session state,
// so this always succeeds; an already-issued token stays valid until expiry.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constant.MsgLoggedOut})
}

// Check verifies the session cookie and reports the authenticated user id.
// Missing, expired, tampered and malformed tokens are indistinguishable to
// the caller.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	token := c.Cookies(constant.SessionCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constant.MsgUnauthorized})
	}

	claims, err := h.tokenService.Verify(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constant.MsgUnauthorized})
	}

	return c.Status(fiber.StatusOK).JSON(dto.SessionOutput{
		Authenticated: true,
		UserID:        claims.UserID,
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.userService.ForgotPassword(c.Context(), input); err != nil {
		h.log.Error().Err(err).Msg("forgot-password failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}

	// Identical response whether or not the account exists.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constant.MsgForgotPassword})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenService.SessionTTL().Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
