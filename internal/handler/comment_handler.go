package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/domain"
	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	suggestionID, err := strconv.ParseInt(c.Params("suggestionId"), 10, 64)
	if err != nil || suggestionID <= 0 {
		return middleware.BadRequest("Invalid suggestion ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Content == "" {
		return middleware.BadRequest("Comment content is required")
	}

	comment, err := h.commentService.Create(c.Context(), user, suggestionID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuggestionNotFound):
			return middleware.NotFound(err.Error())
		case errors.Is(err, service.ErrForbidden):
			return middleware.Forbidden(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	suggestionID, err := strconv.ParseInt(c.Params("suggestionId"), 10, 64)
	if err != nil || suggestionID <= 0 {
		return middleware.BadRequest("Invalid suggestion ID")
	}

	comments, err := h.commentService.ListBySuggestion(c.Context(), suggestionID)
	if err != nil {
		if errors.Is(err, service.ErrSuggestionNotFound) {
			return middleware.NotFound(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
