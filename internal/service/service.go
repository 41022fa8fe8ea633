package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"book-to-movie/internal/config"
	"book-to-movie/internal/repository"
)

type Services struct {
	Auth          AuthService
	User          UserService
	Suggestion    SuggestionService
	Comment       CommentService
	OriginalStory OriginalStoryService
	Notification  NotificationService
	Email         EmailService
	Media         MediaService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	notifService := NewNotificationService(repos.Notification)

	return &Services{
		Auth:          NewAuthService(repos.User, emailService, cfg),
		User:          NewUserService(repos.User),
		Suggestion:    NewSuggestionService(repos.Suggestion, repos.User, notifService, emailService, redisClient),
		Comment:       NewCommentService(repos.Comment, repos.Suggestion, notifService),
		OriginalStory: NewOriginalStoryService(repos.OriginalStory),
		Notification:  notifService,
		Email:         emailService,
		Media:         NewMediaService(minioClient, cfg),
	}
}
