package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

type NotificationHandler struct {
	notifService service.NotificationService
}

func NewNotificationHandler(notifService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Authentication required")
	}

	unreadOnly := c.QueryBool("unreadOnly", false)

	notifications, err := h.notifService.List(c.Context(), user.ID, unreadOnly)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Authentication required")
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return middleware.BadRequest("Invalid notification ID")
	}

	notif, err := h.notifService.MarkRead(c.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			return middleware.NotFound(err.Error())
		case errors.Is(err, service.ErrForbidden):
			return middleware.Forbidden(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(notif)
}
