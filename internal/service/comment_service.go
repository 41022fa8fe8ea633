package service

import (
	"context"
	"fmt"
	"log"

	"book-to-movie/internal/authz"
	"book-to-movie/internal/domain"
	"book-to-movie/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, actor *domain.User, suggestionID int64, input domain.CreateCommentInput) (*domain.Comment, error)
	ListBySuggestion(ctx context.Context, suggestionID int64) ([]domain.Comment, error)
}

type commentService struct {
	commentRepo    repository.CommentRepository
	suggestionRepo repository.SuggestionRepository
	notifService   NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	suggestionRepo repository.SuggestionRepository,
	notifService NotificationService,
) CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		suggestionRepo: suggestionRepo,
		notifService:   notifService,
	}
}

func (s *commentService) Create(ctx context.Context, actor *domain.User, suggestionID int64, input domain.CreateCommentInput) (*domain.Comment, error) {
	if !authz.CanPerform(actor, authz.ActionCreateComment, nil) {
		return nil, ErrForbidden
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}

	comment := &domain.Comment{
		Content:      input.Content,
		UserID:       actor.ID,
		SuggestionID: suggestionID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		// The suggestion can vanish between the read above and the
		// insert; the foreign key catches it.
		if isForeignKeyViolation(err) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}
	comment.Username = actor.Username

	if suggestion.SuggestedBy != actor.ID {
		message := fmt.Sprintf("%s commented on your suggestion %q", actor.Username, suggestion.Title)
		if err := s.notifService.Notify(ctx, suggestion.SuggestedBy, domain.NotifComment, message); err != nil {
			log.Printf("Failed to create comment notification for suggestion %d: %v", suggestionID, err)
		}
	}

	return comment, nil
}

func (s *commentService) ListBySuggestion(ctx context.Context, suggestionID int64) ([]domain.Comment, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}

	return s.commentRepo.ListBySuggestion(ctx, suggestionID)
}
