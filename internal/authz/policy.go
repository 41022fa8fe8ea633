// Package authz is the single decision point for every mutating operation.
// Route middleware handles authentication; ownership and role rules live
// here so they cannot drift between handlers.
package authz

import (
	"github.com/google/uuid"

	"book-to-movie/internal/domain"
)

type Action string

const (
	ActionCreateSuggestion    Action = "suggestion:create"
	ActionUpdateSuggestion    Action = "suggestion:update"
	ActionModerateSuggestion  Action = "suggestion:moderate"
	ActionUpvoteSuggestion    Action = "suggestion:upvote"
	ActionCreateComment       Action = "comment:create"
	ActionCreateOriginalStory Action = "story:create"
	ActionReadNotifications   Action = "notification:read"
	ActionUploadCover         Action = "media:upload-cover"
)

// Target identifies the entity an action operates on, when ownership
// matters. Nil means the action has no per-entity owner (create operations).
type Target struct {
	OwnerID uuid.UUID
}

// CanPerform reports whether actor may perform action on target. A nil actor
// is an anonymous caller; public reads never reach this function.
func CanPerform(actor *domain.User, action Action, target *Target) bool {
	if actor == nil {
		return false
	}

	switch action {
	case ActionCreateSuggestion,
		ActionUpvoteSuggestion,
		ActionCreateComment,
		ActionCreateOriginalStory,
		ActionReadNotifications,
		ActionUploadCover:
		// Any authenticated user. Notification reads are additionally
		// scoped to the owner at the query level.
		return true

	case ActionUpdateSuggestion:
		if actor.HasRole("admin") {
			return true
		}
		return target != nil && target.OwnerID == actor.ID

	case ActionModerateSuggestion:
		return actor.HasRole("admin")

	default:
		return false
	}
}
