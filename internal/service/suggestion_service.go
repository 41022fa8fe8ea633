package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"book-to-movie/internal/authz"
	"book-to-movie/internal/domain"
	"book-to-movie/internal/repository"
)

var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrAlreadyUpvoted     = errors.New("suggestion already upvoted")
	ErrUpvoteNotFound     = errors.New("upvote not found")
	ErrForbidden          = errors.New("not allowed to perform this action")
	ErrInvalidStatus      = errors.New("status must be approved or rejected")
	ErrAlreadyModerated   = errors.New("suggestion has already been moderated")
)

const (
	listCachePrefix = "suggestions:list:"
	listCacheTTL    = 5 * time.Minute
)

type SuggestionService interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateSuggestionInput) (*domain.Suggestion, error)
	GetByID(ctx context.Context, id int64) (*domain.Suggestion, error)
	List(ctx context.Context, filter domain.SuggestionFilter) ([]domain.Suggestion, error)
	Search(ctx context.Context, params domain.SearchParams) ([]domain.RankedSuggestion, error)
	Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdateSuggestionInput) (*domain.Suggestion, error)
	Upvote(ctx context.Context, actor *domain.User, id int64) error
	RemoveUpvote(ctx context.Context, actor *domain.User, id int64) error
	ListPending(ctx context.Context, actor *domain.User) ([]domain.Suggestion, error)
	Moderate(ctx context.Context, actor *domain.User, id int64, input domain.ModerateSuggestionInput) (*domain.Suggestion, error)
}

type suggestionService struct {
	suggestionRepo repository.SuggestionRepository
	userRepo       repository.UserRepository
	notifService   NotificationService
	emailService   EmailService
	redisClient    *redis.Client
}

func NewSuggestionService(
	suggestionRepo repository.SuggestionRepository,
	userRepo repository.UserRepository,
	notifService NotificationService,
	emailService EmailService,
	redisClient *redis.Client,
) SuggestionService {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
		userRepo:       userRepo,
		notifService:   notifService,
		emailService:   emailService,
		redisClient:    redisClient,
	}
}

func (s *suggestionService) Create(ctx context.Context, actor *domain.User, input domain.CreateSuggestionInput) (*domain.Suggestion, error) {
	if !authz.CanPerform(actor, authz.ActionCreateSuggestion, nil) {
		return nil, ErrForbidden
	}

	suggestion := &domain.Suggestion{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		ASIN:            input.ASIN,
		CoverImageURL:   input.CoverImageURL,
		Synopsis:        input.Synopsis,
		Pitch:           input.Pitch,
		Genre:           pq.StringArray(input.Genre),
		PublicationYear: input.PublicationYear,
		PageCount:       input.PageCount,
		SuggestedBy:     actor.ID,
	}

	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return suggestion, nil
}

func (s *suggestionService) GetByID(ctx context.Context, id int64) (*domain.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}
	return suggestion, nil
}

func (s *suggestionService) List(ctx context.Context, filter domain.SuggestionFilter) ([]domain.Suggestion, error) {
	cacheKey := fmt.Sprintf("%s%s:%s:%s:%d", listCachePrefix, filter.Genre, filter.Status, filter.SortBy, filter.Limit)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var suggestions []domain.Suggestion
			if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
				return suggestions, nil
			}
		}
	}

	suggestions, err := s.suggestionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(suggestions); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return suggestions, nil
}

func (s *suggestionService) Search(ctx context.Context, params domain.SearchParams) ([]domain.RankedSuggestion, error) {
	return s.suggestionRepo.Search(ctx, params)
}

func (s *suggestionService) Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdateSuggestionInput) (*domain.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}

	if !authz.CanPerform(actor, authz.ActionUpdateSuggestion, &authz.Target{OwnerID: suggestion.SuggestedBy}) {
		return nil, ErrForbidden
	}

	updated, err := s.suggestionRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrSuggestionNotFound
	}

	s.invalidateListCache(ctx)
	return updated, nil
}

func (s *suggestionService) Upvote(ctx context.Context, actor *domain.User, id int64) error {
	if !authz.CanPerform(actor, authz.ActionUpvoteSuggestion, nil) {
		return ErrForbidden
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if suggestion == nil {
		return ErrSuggestionNotFound
	}

	if err := s.suggestionRepo.AddUpvote(ctx, actor.ID, id); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyUpvoted
		}
		return err
	}

	s.invalidateListCache(ctx)

	if suggestion.SuggestedBy != actor.ID {
		message := fmt.Sprintf("%s upvoted your suggestion %q", actor.Username, suggestion.Title)
		if err := s.notifService.Notify(ctx, suggestion.SuggestedBy, domain.NotifUpvote, message); err != nil {
			log.Printf("Failed to create upvote notification for suggestion %d: %v", id, err)
		}
	}

	return nil
}

func (s *suggestionService) RemoveUpvote(ctx context.Context, actor *domain.User, id int64) error {
	if !authz.CanPerform(actor, authz.ActionUpvoteSuggestion, nil) {
		return ErrForbidden
	}

	if err := s.suggestionRepo.RemoveUpvote(ctx, actor.ID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUpvoteNotFound
		}
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *suggestionService) ListPending(ctx context.Context, actor *domain.User) ([]domain.Suggestion, error) {
	if !authz.CanPerform(actor, authz.ActionModerateSuggestion, nil) {
		return nil, ErrForbidden
	}
	return s.suggestionRepo.ListPending(ctx)
}

// Moderate moves a pending suggestion to approved or rejected. Approved and
// rejected are terminal: a second decision fails instead of silently
// overwriting the first.
func (s *suggestionService) Moderate(ctx context.Context, actor *domain.User, id int64, input domain.ModerateSuggestionInput) (*domain.Suggestion, error) {
	if !authz.CanPerform(actor, authz.ActionModerateSuggestion, nil) {
		return nil, ErrForbidden
	}

	if input.Status != domain.SuggestionApproved && input.Status != domain.SuggestionRejected {
		return nil, ErrInvalidStatus
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}
	if suggestion.Status != domain.SuggestionPending {
		return nil, ErrAlreadyModerated
	}

	updated, err := s.suggestionRepo.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// The pending check above raced with another decision; the
		// status-guarded update matched no row.
		return nil, ErrAlreadyModerated
	}

	s.invalidateListCache(ctx)

	message := fmt.Sprintf("Your suggestion %q was %s", updated.Title, updated.Status)
	if input.Reason != nil && *input.Reason != "" {
		message += ": " + *input.Reason
	}
	if err := s.notifService.Notify(ctx, updated.SuggestedBy, domain.NotifModeration, message); err != nil {
		log.Printf("Failed to create moderation notification for suggestion %d: %v", id, err)
	}

	go func() {
		owner, err := s.userRepo.GetByID(context.Background(), updated.SuggestedBy)
		if err != nil || owner == nil {
			log.Printf("Failed to load owner for moderation email on suggestion %d: %v", id, err)
			return
		}
		if err := s.emailService.SendModerationEmail(context.Background(), owner.Email, owner.Username, updated.Title, updated.Status, input.Reason); err != nil {
			log.Printf("Failed to send moderation email to %s: %v", owner.Email, err)
		}
	}()

	return updated, nil
}

// invalidateListCache drops every cached list variant after a write. Failures
// only cost freshness, so they are logged and ignored.
func (s *suggestionService) invalidateListCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	keys, err := s.redisClient.Keys(ctx, listCachePrefix+"*").Result()
	if err != nil {
		log.Printf("Failed to scan suggestion list cache keys: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate suggestion list cache: %v", err)
	}
}
