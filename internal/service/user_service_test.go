package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"book-to-movie/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestUserUpdateProfile(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		id := uuid.New()
		existing := &domain.User{
			ID:        id,
			Username:  "jane",
			FirstName: strPtr("Jane"),
			Bio:       strPtr("Old bio"),
		}
		userRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
		userRepo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := svc.UpdateProfile(context.Background(), id, domain.UpdateProfileInput{
			Bio: strPtr("New bio"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "New bio", *updated.Bio)
		assert.Equal(t, "Jane", *updated.FirstName)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		id := uuid.New()
		userRepo.On("GetByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.UpdateProfile(context.Background(), id, domain.UpdateProfileInput{})

		assert.ErrorIs(t, err, ErrUserNotFound)
		userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}
