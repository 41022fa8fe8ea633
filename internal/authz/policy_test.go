package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"book-to-movie/internal/domain"
)

func TestCanPerform(t *testing.T) {
	ownerID := uuid.New()
	owner := &domain.User{ID: ownerID, Role: "reader"}
	stranger := &domain.User{ID: uuid.New(), Role: "director"}
	admin := &domain.User{ID: uuid.New(), Role: "admin"}

	tests := []struct {
		name   string
		actor  *domain.User
		action Action
		target *Target
		want   bool
	}{
		{"anonymous cannot create", nil, ActionCreateSuggestion, nil, false},
		{"anonymous cannot upvote", nil, ActionUpvoteSuggestion, nil, false},
		{"reader can create suggestion", owner, ActionCreateSuggestion, nil, true},
		{"reader can upvote", owner, ActionUpvoteSuggestion, nil, true},
		{"director can comment", stranger, ActionCreateComment, nil, true},
		{"reader can submit story", owner, ActionCreateOriginalStory, nil, true},
		{"reader can read notifications", owner, ActionReadNotifications, nil, true},
		{"reader can upload cover", owner, ActionUploadCover, nil, true},
		{"owner can update own suggestion", owner, ActionUpdateSuggestion, &Target{OwnerID: ownerID}, true},
		{"non-owner cannot update", stranger, ActionUpdateSuggestion, &Target{OwnerID: ownerID}, false},
		{"admin can update any suggestion", admin, ActionUpdateSuggestion, &Target{OwnerID: ownerID}, true},
		{"update without target denied for non-admin", owner, ActionUpdateSuggestion, nil, false},
		{"reader cannot moderate", owner, ActionModerateSuggestion, nil, false},
		{"director cannot moderate", stranger, ActionModerateSuggestion, nil, false},
		{"admin can moderate", admin, ActionModerateSuggestion, nil, true},
		{"unknown action denied", admin, Action("suggestion:purge"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.actor, tt.action, tt.target))
		})
	}
}
