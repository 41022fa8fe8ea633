package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"book-to-movie/internal/middleware"
	"book-to-movie/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) UploadCover(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("A file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.mediaService.UploadCover(c.Context(), user, fileHeader.Filename, fileHeader.Size, contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return middleware.Forbidden(err.Error())
		case errors.Is(err, service.ErrUnsupportedMediaType):
			return middleware.BadRequest(err.Error())
		case errors.Is(err, service.ErrStorageUnavailable):
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cover_image_url": url,
	})
}
