package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"book-to-movie/internal/domain"
)

type OriginalStoryRepository interface {
	Create(ctx context.Context, story *domain.OriginalStory) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OriginalStory, error)
}

type originalStoryRepository struct {
	db *sqlx.DB
}

func NewOriginalStoryRepository(db *sqlx.DB) OriginalStoryRepository {
	return &originalStoryRepository{db: db}
}

func (r *originalStoryRepository) Create(ctx context.Context, story *domain.OriginalStory) error {
	query := `
		INSERT INTO original_stories (title, synopsis, genre, manuscript_url, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`

	return r.db.QueryRowxContext(ctx, query,
		story.Title, story.Synopsis, story.Genre, story.ManuscriptURL, story.UserID,
	).Scan(&story.ID, &story.Status, &story.CreatedAt)
}

func (r *originalStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OriginalStory, error) {
	query := `
		SELECT * FROM original_stories
		WHERE user_id = $1
		ORDER BY created_at DESC`

	stories := []domain.OriginalStory{}
	err := r.db.SelectContext(ctx, &stories, query, userID)
	return stories, err
}
