package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/domain"
	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type SuggestionHandler struct {
	suggestionService service.SuggestionService
}

func NewSuggestionHandler(suggestionService service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

func (h *SuggestionHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateSuggestionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Title == "" || input.Author == "" {
		return middleware.BadRequest("Title and author are required")
	}

	suggestion, err := h.suggestionService.Create(c.Context(), user, input)
	if err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(suggestion)
}

func (h *SuggestionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseSuggestionID(c)
	if err != nil {
		return err
	}

	suggestion, err := h.suggestionService.GetByID(c.Context(), id)
	if err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(suggestion)
}

func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	filter := domain.SuggestionFilter{
		Genre:  c.Query("genre"),
		Status: domain.SuggestionStatus(c.Query("status")),
		SortBy: c.Query("sortBy"),
		Limit:  getLimit(c),
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return middleware.BadRequest("Invalid status filter")
	}

	suggestions, err := h.suggestionService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(suggestions)
}

func (h *SuggestionHandler) Search(c *fiber.Ctx) error {
	params := domain.SearchParams{
		Query: c.Query("q"),
		Genre: c.Query("genre"),
		Limit: getLimit(c),
	}

	if raw := c.Query("minUpvotes"); raw != "" {
		minUpvotes, err := strconv.Atoi(raw)
		if err != nil || minUpvotes < 0 {
			return middleware.BadRequest("Invalid minUpvotes value")
		}
		params.MinUpvotes = &minUpvotes
	}

	results, err := h.suggestionService.Search(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *SuggestionHandler) Update(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := parseSuggestionID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateSuggestionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	suggestion, err := h.suggestionService.Update(c.Context(), user, id, input)
	if err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(suggestion)
}

func (h *SuggestionHandler) Upvote(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := parseSuggestionID(c)
	if err != nil {
		return err
	}

	if err := h.suggestionService.Upvote(c.Context(), user, id); err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Upvote recorded",
	})
}

func (h *SuggestionHandler) RemoveUpvote(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := parseSuggestionID(c)
	if err != nil {
		return err
	}

	if err := h.suggestionService.RemoveUpvote(c.Context(), user, id); err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *SuggestionHandler) ListPending(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	suggestions, err := h.suggestionService.ListPending(c.Context(), user)
	if err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(suggestions)
}

func (h *SuggestionHandler) Moderate(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := parseSuggestionID(c)
	if err != nil {
		return err
	}

	var input domain.ModerateSuggestionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	suggestion, err := h.suggestionService.Moderate(c.Context(), user, id, input)
	if err != nil {
		return mapSuggestionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(suggestion)
}

func parseSuggestionID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("Invalid suggestion ID")
	}
	return id, nil
}

// getLimit clamps the requested page size so no query can sweep the whole
// table.
func getLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

func mapSuggestionError(err error) error {
	switch {
	case errors.Is(err, service.ErrSuggestionNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, service.ErrForbidden):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, service.ErrAlreadyUpvoted), errors.Is(err, service.ErrAlreadyModerated):
		return middleware.Conflict(err.Error())
	case errors.Is(err, service.ErrUpvoteNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		return middleware.BadRequest(err.Error())
	}
	return err
}
