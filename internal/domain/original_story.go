package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OriginalStory is a user-submitted original manuscript, tracked separately
// from adaptation suggestions. Only the manuscript URL is recorded; the file
// itself lives elsewhere.
type OriginalStory struct {
	ID            int64          `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Synopsis      *string        `json:"synopsis,omitempty" db:"synopsis"`
	Genre         pq.StringArray `json:"genre" db:"genre"`
	ManuscriptURL *string        `json:"manuscript_url,omitempty" db:"manuscript_url"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"`
	Status        string         `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

type CreateOriginalStoryInput struct {
	Title         string   `json:"title"`
	Synopsis      *string  `json:"synopsis,omitempty"`
	Genre         []string `json:"genre"`
	ManuscriptURL *string  `json:"manuscript_url,omitempty"`
}
