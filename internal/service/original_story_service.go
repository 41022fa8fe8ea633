package service

import (
	"context"

	"github.com/lib/pq"

	"book-to-movie/internal/authz"
	"book-to-movie/internal/domain"
	"book-to-movie/internal/repository"
)

type OriginalStoryService interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateOriginalStoryInput) (*domain.OriginalStory, error)
	ListMine(ctx context.Context, actor *domain.User) ([]domain.OriginalStory, error)
}

type originalStoryService struct {
	storyRepo repository.OriginalStoryRepository
}

func NewOriginalStoryService(storyRepo repository.OriginalStoryRepository) OriginalStoryService {
	return &originalStoryService{storyRepo: storyRepo}
}

func (s *originalStoryService) Create(ctx context.Context, actor *domain.User, input domain.CreateOriginalStoryInput) (*domain.OriginalStory, error) {
	if !authz.CanPerform(actor, authz.ActionCreateOriginalStory, nil) {
		return nil, ErrForbidden
	}

	story := &domain.OriginalStory{
		Title:         input.Title,
		Synopsis:      input.Synopsis,
		Genre:         pq.StringArray(input.Genre),
		ManuscriptURL: input.ManuscriptURL,
		UserID:        actor.ID,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *originalStoryService) ListMine(ctx context.Context, actor *domain.User) ([]domain.OriginalStory, error) {
	return s.storyRepo.ListByUser(ctx, actor.ID)
}
