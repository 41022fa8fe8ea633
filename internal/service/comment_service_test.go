package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"book-to-movie/internal/domain"
)

func TestCommentCreate(t *testing.T) {
	t.Run("creates comment and notifies the suggestion owner", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		notifService := new(MockNotificationService)
		svc := NewCommentService(commentRepo, suggestionRepo, notifService)

		actor := reader()
		ownerID := uuid.New()
		suggestionRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Suggestion{ID: 3, Title: "Dune", SuggestedBy: ownerID}, nil)
		commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
		notifService.On("Notify", mock.Anything, ownerID, domain.NotifComment, mock.AnythingOfType("string")).Return(nil)

		comment, err := svc.Create(context.Background(), actor, 3, domain.CreateCommentInput{Content: "Great pick"})

		assert.NoError(t, err)
		assert.Equal(t, actor.Username, comment.Username)
		assert.Equal(t, int64(3), comment.SuggestionID)
		notifService.AssertExpectations(t)
	})

	t.Run("own suggestion gets no notification", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		notifService := new(MockNotificationService)
		svc := NewCommentService(commentRepo, suggestionRepo, notifService)

		actor := reader()
		suggestionRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Suggestion{ID: 3, SuggestedBy: actor.ID}, nil)
		commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)

		_, err := svc.Create(context.Background(), actor, 3, domain.CreateCommentInput{Content: "Bump"})

		assert.NoError(t, err)
		notifService.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("suggestion deleted between read and insert", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		notifService := new(MockNotificationService)
		svc := NewCommentService(commentRepo, suggestionRepo, notifService)

		suggestionRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Suggestion{ID: 3, SuggestedBy: uuid.New()}, nil)
		commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(&pq.Error{Code: "23503"})

		_, err := svc.Create(context.Background(), reader(), 3, domain.CreateCommentInput{Content: "Hello"})

		assert.ErrorIs(t, err, ErrSuggestionNotFound)
		notifService.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing suggestion", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		svc := NewCommentService(commentRepo, suggestionRepo, new(MockNotificationService))

		suggestionRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

		_, err := svc.Create(context.Background(), reader(), 404, domain.CreateCommentInput{Content: "Hello"})

		assert.ErrorIs(t, err, ErrSuggestionNotFound)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentList(t *testing.T) {
	t.Run("returns comments for an existing suggestion", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		svc := NewCommentService(commentRepo, suggestionRepo, new(MockNotificationService))

		suggestionRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Suggestion{ID: 3}, nil)
		commentRepo.On("ListBySuggestion", mock.Anything, int64(3)).
			Return([]domain.Comment{{ID: 1, Content: "First"}}, nil)

		comments, err := svc.ListBySuggestion(context.Background(), 3)

		assert.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("missing suggestion", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		suggestionRepo := new(MockSuggestionRepository)
		svc := NewCommentService(commentRepo, suggestionRepo, new(MockNotificationService))

		suggestionRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

		_, err := svc.ListBySuggestion(context.Background(), 404)

		assert.ErrorIs(t, err, ErrSuggestionNotFound)
	})
}
