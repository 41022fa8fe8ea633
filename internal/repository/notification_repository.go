package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"book-to-movie/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64, userID uuid.UUID) (*domain.Notification, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, read, created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.UserID, notif.Type, notif.Message,
	).Scan(&notif.ID, &notif.Read, &notif.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error) {
	query := `SELECT * FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_at DESC`

	notifications := []domain.Notification{}
	err := r.db.SelectContext(ctx, &notifications, query, userID)
	return notifications, err
}

// MarkRead flips the row only when both id and owner match, so one user can
// never touch another's notifications. Returns sql.ErrNoRows otherwise.
func (r *notificationRepository) MarkRead(ctx context.Context, id int64, userID uuid.UUID) (*domain.Notification, error) {
	query := `
		UPDATE notifications
		SET read = true
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, type, message, read, created_at`

	var notif domain.Notification
	err := r.db.QueryRowxContext(ctx, query, id, userID).StructScan(&notif)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}
