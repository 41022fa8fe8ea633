package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"book-to-movie/internal/domain"
)

// suggestionColumns enumerates every column except the generated
// search_vector, which never leaves the database.
const suggestionColumns = `id, title, author, isbn, asin, cover_image_url, synopsis, pitch,
		genre, publication_year, page_count, suggested_by, status, upvote_count, created_at, updated_at`

type SuggestionRepository interface {
	Create(ctx context.Context, s *domain.Suggestion) error
	GetByID(ctx context.Context, id int64) (*domain.Suggestion, error)
	List(ctx context.Context, filter domain.SuggestionFilter) ([]domain.Suggestion, error)
	Search(ctx context.Context, params domain.SearchParams) ([]domain.RankedSuggestion, error)
	Update(ctx context.Context, id int64, input domain.UpdateSuggestionInput) (*domain.Suggestion, error)
	ListPending(ctx context.Context) ([]domain.Suggestion, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SuggestionStatus) (*domain.Suggestion, error)
	AddUpvote(ctx context.Context, userID uuid.UUID, suggestionID int64) error
	RemoveUpvote(ctx context.Context, userID uuid.UUID, suggestionID int64) error
}

type suggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(ctx context.Context, s *domain.Suggestion) error {
	query := `
		INSERT INTO book_suggestions
			(title, author, isbn, asin, cover_image_url, synopsis, pitch, genre,
			 publication_year, page_count, suggested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, status, upvote_count, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		s.Title, s.Author, s.ISBN, s.ASIN, s.CoverImageURL, s.Synopsis, s.Pitch,
		s.Genre, s.PublicationYear, s.PageCount, s.SuggestedBy,
	).Scan(&s.ID, &s.Status, &s.UpvoteCount, &s.CreatedAt, &s.UpdatedAt)
}

func (r *suggestionRepository) GetByID(ctx context.Context, id int64) (*domain.Suggestion, error) {
	var s domain.Suggestion
	query := `SELECT ` + suggestionColumns + ` FROM book_suggestions WHERE id = $1`

	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepository) List(ctx context.Context, filter domain.SuggestionFilter) ([]domain.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM book_suggestions WHERE 1=1`
	args := []interface{}{}

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		query += fmt.Sprintf(" AND $%d = ANY(genre)", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	switch filter.SortBy {
	case domain.SortByUpvotes:
		query += " ORDER BY upvote_count DESC"
	case domain.SortByTitle:
		query += " ORDER BY title ASC"
	default:
		query += " ORDER BY created_at DESC"
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	suggestions := []domain.Suggestion{}
	err := r.db.SelectContext(ctx, &suggestions, query, args...)
	return suggestions, err
}

func (r *suggestionRepository) Search(ctx context.Context, params domain.SearchParams) ([]domain.RankedSuggestion, error) {
	// An empty query matches every row with a zero rank instead of none.
	query := `
		SELECT ` + suggestionColumns + `,
			ts_rank_cd(search_vector, plainto_tsquery('english', $1)) AS rank
		FROM book_suggestions
		WHERE ($1 = '' OR search_vector @@ plainto_tsquery('english', $1))`
	args := []interface{}{params.Query}

	if params.Genre != "" {
		args = append(args, params.Genre)
		query += fmt.Sprintf(" AND $%d = ANY(genre)", len(args))
	}
	if params.MinUpvotes != nil {
		args = append(args, *params.MinUpvotes)
		query += fmt.Sprintf(" AND upvote_count >= $%d", len(args))
	}

	query += " ORDER BY rank DESC, created_at DESC"
	args = append(args, params.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	results := []domain.RankedSuggestion{}
	err := r.db.SelectContext(ctx, &results, query, args...)
	return results, err
}

func (r *suggestionRepository) Update(ctx context.Context, id int64, input domain.UpdateSuggestionInput) (*domain.Suggestion, error) {
	// COALESCE keeps the stored value for every field the caller omitted.
	query := `
		UPDATE book_suggestions
		SET title = COALESCE($1, title),
			author = COALESCE($2, author),
			synopsis = COALESCE($3, synopsis),
			pitch = COALESCE($4, pitch),
			genre = COALESCE($5, genre),
			publication_year = COALESCE($6, publication_year),
			page_count = COALESCE($7, page_count),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + suggestionColumns

	var genre pq.StringArray
	if input.Genre != nil {
		genre = pq.StringArray(*input.Genre)
	}

	var s domain.Suggestion
	err := r.db.QueryRowxContext(ctx, query,
		input.Title, input.Author, input.Synopsis, input.Pitch, genre,
		input.PublicationYear, input.PageCount, id,
	).StructScan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepository) ListPending(ctx context.Context) ([]domain.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + `
		FROM book_suggestions
		WHERE status = 'pending'
		ORDER BY created_at DESC`

	suggestions := []domain.Suggestion{}
	err := r.db.SelectContext(ctx, &suggestions, query)
	return suggestions, err
}

// UpdateStatus only moves a suggestion out of pending. The status guard in
// the WHERE clause means two concurrent decisions cannot both win: the loser
// matches no row and gets nil back.
func (r *suggestionRepository) UpdateStatus(ctx context.Context, id int64, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	query := `
		UPDATE book_suggestions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING ` + suggestionColumns

	var s domain.Suggestion
	err := r.db.QueryRowxContext(ctx, query, status, id).StructScan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AddUpvote inserts the upvote row and bumps the counter in one transaction,
// so the counter can never drift from the row set. The unique-violation error
// from a duplicate insert propagates to the caller untranslated.
func (r *suggestionRepository) AddUpvote(ctx context.Context, userID uuid.UUID, suggestionID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO upvotes (user_id, suggestion_id) VALUES ($1, $2)`,
		userID, suggestionID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE book_suggestions SET upvote_count = upvote_count + 1 WHERE id = $1`,
		suggestionID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// RemoveUpvote deletes the upvote row and decrements the counter, clamped at
// zero, in one transaction. Returns sql.ErrNoRows when there was no row to
// delete.
func (r *suggestionRepository) RemoveUpvote(ctx context.Context, userID uuid.UUID, suggestionID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM upvotes WHERE user_id = $1 AND suggestion_id = $2`,
		userID, suggestionID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE book_suggestions SET upvote_count = GREATEST(upvote_count - 1, 0) WHERE id = $1`,
		suggestionID,
	); err != nil {
		return err
	}

	return tx.Commit()
}
