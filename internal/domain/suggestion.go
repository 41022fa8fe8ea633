package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionPending, SuggestionApproved, SuggestionRejected:
		return true
	default:
		return false
	}
}

type Suggestion struct {
	ID              int64            `json:"id" db:"id"`
	Title           string           `json:"title" db:"title"`
	Author          string           `json:"author" db:"author"`
	ISBN            *string          `json:"isbn,omitempty" db:"isbn"`
	ASIN            *string          `json:"asin,omitempty" db:"asin"`
	CoverImageURL   *string          `json:"cover_image_url,omitempty" db:"cover_image_url"`
	Synopsis        *string          `json:"synopsis,omitempty" db:"synopsis"`
	Pitch           *string          `json:"pitch,omitempty" db:"pitch"`
	Genre           pq.StringArray   `json:"genre" db:"genre"`
	PublicationYear *int             `json:"publication_year,omitempty" db:"publication_year"`
	PageCount       *int             `json:"page_count,omitempty" db:"page_count"`
	SuggestedBy     uuid.UUID        `json:"suggested_by" db:"suggested_by"`
	Status          SuggestionStatus `json:"status" db:"status"`
	UpvoteCount     int              `json:"upvote_count" db:"upvote_count"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// RankedSuggestion carries the full-text relevance rank alongside the row.
// Rank is zero when the search query was empty.
type RankedSuggestion struct {
	Suggestion
	Rank float64 `json:"rank" db:"rank"`
}

type Upvote struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	SuggestionID int64     `json:"suggestion_id" db:"suggestion_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateSuggestionInput struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	ISBN            *string  `json:"isbn,omitempty"`
	ASIN            *string  `json:"asin,omitempty"`
	CoverImageURL   *string  `json:"cover_image_url,omitempty"`
	Synopsis        *string  `json:"synopsis,omitempty"`
	Pitch           *string  `json:"pitch,omitempty"`
	Genre           []string `json:"genre"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	PageCount       *int     `json:"page_count,omitempty"`
}

// UpdateSuggestionInput is a partial update: nil fields leave the stored
// value unchanged.
type UpdateSuggestionInput struct {
	Title           *string   `json:"title,omitempty"`
	Author          *string   `json:"author,omitempty"`
	Synopsis        *string   `json:"synopsis,omitempty"`
	Pitch           *string   `json:"pitch,omitempty"`
	Genre           *[]string `json:"genre,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	PageCount       *int      `json:"page_count,omitempty"`
}

type ModerateSuggestionInput struct {
	Status SuggestionStatus `json:"status"`
	Reason *string          `json:"reason,omitempty"`
}

const (
	SortByCreatedAt = "created_at"
	SortByUpvotes   = "upvotes"
	SortByTitle     = "title"
)

type SuggestionFilter struct {
	Genre  string
	Status SuggestionStatus
	SortBy string
	Limit  int
}

type SearchParams struct {
	Query      string
	Genre      string
	MinUpvotes *int
	Limit      int
}
