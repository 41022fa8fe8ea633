package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User          UserRepository
	Suggestion    SuggestionRepository
	Comment       CommentRepository
	OriginalStory OriginalStoryRepository
	Notification  NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Suggestion:    NewSuggestionRepository(db),
		Comment:       NewCommentRepository(db),
		OriginalStory: NewOriginalStoryRepository(db),
		Notification:  NewNotificationRepository(db),
	}
}
