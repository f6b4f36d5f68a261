// Copyright (c) 2026 Foodgram

package subscribe_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/users/subscribe"
)

type fakeRepo struct {
	edges   map[[2]int64]bool
	authors map[int64]*subscribe.Author

	lastRecipeLimit int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		edges: map[[2]int64]bool{},
		authors: map[int64]*subscribe.Author{
			2: {ID: 2, Username: "chef", RecipesCount: 5},
		},
	}
}

func (repo *fakeRepo) Add(_ context.Context, followerID, authorID int64) error {
	key := [2]int64{followerID, authorID}
	if repo.edges[key] {
		return apperr.Conflict("Entry already exists")
	}
	repo.edges[key] = true
	return nil
}

func (repo *fakeRepo) Remove(_ context.Context, followerID, authorID int64) (bool, error) {
	key := [2]int64{followerID, authorID}
	if !repo.edges[key] {
		return false, nil
	}
	delete(repo.edges, key)
	return true, nil
}

func (repo *fakeRepo) Subscription(_ context.Context, _, authorID int64, recipeLimit int) (*subscribe.Author, error) {
	repo.lastRecipeLimit = recipeLimit
	author, ok := repo.authors[authorID]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	clone := *author
	return &clone, nil
}

func (repo *fakeRepo) List(_ context.Context, followerID int64, recipeLimit, _, _ int) ([]*subscribe.Author, int, error) {
	repo.lastRecipeLimit = recipeLimit
	out := make([]*subscribe.Author, 0)
	for key := range repo.edges {
		if key[0] == followerID {
			out = append(out, repo.authors[key[1]])
		}
	}
	return out, len(out), nil
}

func newService(repo *fakeRepo) *subscribe.Service {
	return subscribe.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestSubscribe covers the ledger rules: self-follow rejected, author must
exist, double follow conflicts, and the returned entry is flagged as
subscribed.
*/
func TestSubscribe(t *testing.T) {
	t.Run("follow_author", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		entry, err := service.Subscribe(context.Background(), 1, 2, 0)
		require.NoError(t, err)
		assert.True(t, entry.IsSubscribed)
		assert.Equal(t, "chef", entry.Username)
	})

	t.Run("self_subscription", func(t *testing.T) {
		service := newService(newFakeRepo())

		_, err := service.Subscribe(context.Background(), 1, 1, 0)
		require.Error(t, err)
		assert.Equal(t, "SELF_SUBSCRIPTION", apperr.As(err).Code)
	})

	t.Run("duplicate_follow", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		_, err := service.Subscribe(context.Background(), 1, 2, 0)
		require.NoError(t, err)

		_, err = service.Subscribe(context.Background(), 1, 2, 0)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("missing_author", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		_, err := service.Subscribe(context.Background(), 1, 42, 0)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
		assert.Empty(t, repo.edges)
	})
}

/*
TestUnsubscribe checks removal semantics: an existing edge goes away, an
absent one errors.
*/
func TestUnsubscribe(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.Subscribe(context.Background(), 1, 2, 0)
	require.NoError(t, err)

	require.NoError(t, service.Unsubscribe(context.Background(), 1, 2))

	err = service.Unsubscribe(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestRecipePreviewLimit verifies the default kicks in when the caller does
not ask for a limit and explicit limits pass through.
*/
func TestRecipePreviewLimit(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.Subscribe(context.Background(), 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, subscribe.DefaultRecipePreviewLimit, repo.lastRecipeLimit)

	_, _, err = service.ListSubscriptions(context.Background(), 1, 7, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastRecipeLimit)
}
