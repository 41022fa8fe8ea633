package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID           int64     `json:"id" db:"id"`
	Content      string    `json:"content" db:"content"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	SuggestionID int64     `json:"suggestion_id" db:"suggestion_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Username is populated on list reads from the joined users row.
	Username string `json:"username,omitempty" db:"username"`
}

type CreateCommentInput struct {
	Content string `json:"content"`
}
