package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/domain"
	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Email == "" || input.Username == "" || input.Password == "" {
		return middleware.BadRequest("Email, username and password are required")
	}

	user, token, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateIdentity):
			return middleware.Conflict(err.Error())
		case errors.Is(err, service.ErrPasswordTooShort), errors.Is(err, service.ErrInvalidRole):
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	user, token, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.Unauthorized(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}
