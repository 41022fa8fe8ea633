package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"book-to-movie/internal/authz"
	"book-to-movie/internal/domain"
	"book-to-movie/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType domain.NotificationType, message string) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor *domain.User, id int64) (*domain.Notification, error)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, notifType domain.NotificationType, message string) error {
	notif := &domain.Notification{
		UserID:  userID,
		Type:    notifType,
		Message: message,
	}
	return s.notifRepo.Create(ctx, notif)
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, unreadOnly)
}

func (s *notificationService) MarkRead(ctx context.Context, actor *domain.User, id int64) (*domain.Notification, error) {
	if !authz.CanPerform(actor, authz.ActionReadNotifications, nil) {
		return nil, ErrForbidden
	}

	notif, err := s.notifRepo.MarkRead(ctx, id, actor.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return notif, nil
}
