package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"book-to-movie/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListBySuggestion(ctx context.Context, suggestionID int64) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (content, user_id, suggestion_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.Content, comment.UserID, comment.SuggestionID,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) ListBySuggestion(ctx context.Context, suggestionID int64) ([]domain.Comment, error) {
	query := `
		SELECT c.id, c.content, c.user_id, c.suggestion_id, c.created_at, u.username
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.suggestion_id = $1
		ORDER BY c.created_at DESC`

	comments := []domain.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, suggestionID)
	return comments, err
}
