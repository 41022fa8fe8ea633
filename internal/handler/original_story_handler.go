package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/domain"
	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

type OriginalStoryHandler struct {
	storyService service.OriginalStoryService
}

func NewOriginalStoryHandler(storyService service.OriginalStoryService) *OriginalStoryHandler {
	return &OriginalStoryHandler{storyService: storyService}
}

func (h *OriginalStoryHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateOriginalStoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Title == "" {
		return middleware.BadRequest("Title is required")
	}

	story, err := h.storyService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return middleware.Forbidden(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(story)
}

func (h *OriginalStoryHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Authentication required")
	}

	stories, err := h.storyService.ListMine(c.Context(), user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stories)
}
