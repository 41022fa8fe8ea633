package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"book-to-movie/internal/authz"
	"book-to-movie/internal/config"
	"book-to-movie/internal/domain"
)

var (
	ErrUnsupportedMediaType = errors.New("only image uploads are accepted")
	ErrStorageUnavailable   = errors.New("media storage is not configured")
)

type MediaService interface {
	UploadCover(ctx context.Context, actor *domain.User, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error)
}

type mediaService struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMediaService(client *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{client: client, cfg: cfg}
}

func (s *mediaService) UploadCover(ctx context.Context, actor *domain.User, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error) {
	if !authz.CanPerform(actor, authz.ActionUploadCover, nil) {
		return "", ErrForbidden
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedMediaType
	}
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	ext := filepath.Ext(fileName)
	objectName := fmt.Sprintf("covers/%s/%s%s", time.Now().Format("2006/01"), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.cfg.MinIOBucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover image: %w", err)
	}

	return s.publicURL(objectName), nil
}

func (s *mediaService) publicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectName)
}
