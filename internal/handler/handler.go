package handler

import (
	"book-to-movie/internal/service"
)

type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Suggestion    *SuggestionHandler
	Comment       *CommentHandler
	OriginalStory *OriginalStoryHandler
	Notification  *NotificationHandler
	Media         *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(services.Auth),
		User:          NewUserHandler(services.User),
		Suggestion:    NewSuggestionHandler(services.Suggestion),
		Comment:       NewCommentHandler(services.Comment),
		OriginalStory: NewOriginalStoryHandler(services.OriginalStory),
		Notification:  NewNotificationHandler(services.Notification),
		Media:         NewMediaHandler(services.Media),
	}
}
