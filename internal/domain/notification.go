package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifUpvote     NotificationType = "upvote"
	NotifComment    NotificationType = "comment"
	NotifModeration NotificationType = "moderation"
)
