//go:build integration
// +build integration

package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-to-movie/internal/domain"
)

func upvoteCount(t *testing.T, env *TestEnv, id int64) int {
	var count int
	require.NoError(t, env.DB.Get(&count, `SELECT upvote_count FROM book_suggestions WHERE id = $1`, id))
	return count
}

func TestUpvoteTransaction(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	owner := env.CreateUser(t, "owner")
	voter := env.CreateUser(t, "voter")
	s := env.CreateSuggestion(t, owner.ID, "Dune", "Frank Herbert", nil)

	t.Run("add then duplicate add leaves counter at one", func(t *testing.T) {
		require.NoError(t, env.Repos.Suggestion.AddUpvote(ctx, voter.ID, s.ID))
		assert.Equal(t, 1, upvoteCount(t, env, s.ID))

		err := env.Repos.Suggestion.AddUpvote(ctx, voter.ID, s.ID)
		var pqErr *pq.Error
		require.ErrorAs(t, err, &pqErr)
		assert.Equal(t, pq.ErrorCode("23505"), pqErr.Code)

		// The rolled-back transaction must not have bumped the counter.
		assert.Equal(t, 1, upvoteCount(t, env, s.ID))
	})

	t.Run("remove returns counter to zero and a second remove finds nothing", func(t *testing.T) {
		require.NoError(t, env.Repos.Suggestion.RemoveUpvote(ctx, voter.ID, s.ID))
		assert.Equal(t, 0, upvoteCount(t, env, s.ID))

		err := env.Repos.Suggestion.RemoveUpvote(ctx, voter.ID, s.ID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Equal(t, 0, upvoteCount(t, env, s.ID))
	})

	t.Run("counter never goes below zero", func(t *testing.T) {
		// Force the drifted state: an upvote row exists but the counter
		// already reads zero.
		require.NoError(t, env.Repos.Suggestion.AddUpvote(ctx, voter.ID, s.ID))
		_, err := env.DB.Exec(`UPDATE book_suggestions SET upvote_count = 0 WHERE id = $1`, s.ID)
		require.NoError(t, err)

		require.NoError(t, env.Repos.Suggestion.RemoveUpvote(ctx, voter.ID, s.ID))
		assert.Equal(t, 0, upvoteCount(t, env, s.ID))
	})
}

func TestSearchOrdering(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	owner := env.CreateUser(t, "owner")
	synopsis := "A desert planet. The desert hides spice."
	desert := env.CreateSuggestion(t, owner.ID, "Desert World", "A. Author", &synopsis)
	mention := env.CreateSuggestion(t, owner.ID, "City Lights", "B. Author", strPtr("One desert scene."))
	unrelated := env.CreateSuggestion(t, owner.ID, "Ocean Deep", "C. Author", strPtr("Submarines."))
	env.StaggerCreatedAt(t, desert.ID, mention.ID, unrelated.ID)

	t.Run("empty query matches all rows newest first with zero rank", func(t *testing.T) {
		results, err := env.Repos.Suggestion.Search(ctx, domain.SearchParams{Query: "", Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, unrelated.ID, results[0].ID)
		assert.Equal(t, mention.ID, results[1].ID)
		assert.Equal(t, desert.ID, results[2].ID)
		for _, r := range results {
			assert.Zero(t, r.Rank)
		}
	})

	t.Run("matching query orders by rank before recency", func(t *testing.T) {
		results, err := env.Repos.Suggestion.Search(ctx, domain.SearchParams{Query: "desert", Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 2)
		// The denser match wins even though it is the older row.
		assert.Equal(t, desert.ID, results[0].ID)
		assert.Equal(t, mention.ID, results[1].ID)
		assert.Greater(t, results[0].Rank, results[1].Rank)
	})
}

func TestListSortFallback(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	owner := env.CreateUser(t, "owner")
	first := env.CreateSuggestion(t, owner.ID, "First", "A. Author", nil)
	second := env.CreateSuggestion(t, owner.ID, "Second", "B. Author", nil)
	env.StaggerCreatedAt(t, first.ID, second.ID)

	suggestions, err := env.Repos.Suggestion.List(ctx, domain.SuggestionFilter{
		SortBy: "nonsense",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, second.ID, suggestions[0].ID)
	assert.Equal(t, first.ID, suggestions[1].ID)
}

func strPtr(s string) *string { return &s }
