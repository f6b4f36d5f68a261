// Copyright (c) 2026 Foodgram

package favorite_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanZabelin/foodgram/internal/favorite"
	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

type fakeRepo struct {
	entries map[[2]int64]bool
	cards   map[int64]*favorite.Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		entries: map[[2]int64]bool{},
		cards: map[int64]*favorite.Item{
			1: {ID: 1, Name: "Borscht", Image: "recipes/b.png", CookingTime: 90},
		},
	}
}

func (repo *fakeRepo) Add(_ context.Context, userID, recipeID int64) error {
	key := [2]int64{userID, recipeID}
	if repo.entries[key] {
		return apperr.Conflict("Entry already exists")
	}
	repo.entries[key] = true
	return nil
}

func (repo *fakeRepo) Remove(_ context.Context, userID, recipeID int64) (bool, error) {
	key := [2]int64{userID, recipeID}
	if !repo.entries[key] {
		return false, nil
	}
	delete(repo.entries, key)
	return true, nil
}

func (repo *fakeRepo) RecipeCard(_ context.Context, recipeID int64) (*favorite.Item, error) {
	card, ok := repo.cards[recipeID]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	return card, nil
}

func newService(repo *fakeRepo) *favorite.Service {
	return favorite.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestFavoriteLedger covers the membership rules: add returns the compact
card, repeat add conflicts, remove of an absent entry fails, and a missing
recipe never creates a row.
*/
func TestFavoriteLedger(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		item, err := service.AddRecipe(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.Equal(t, "Borscht", item.Name)
	})

	t.Run("duplicate_add", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		_, err := service.AddRecipe(context.Background(), 7, 1)
		require.NoError(t, err)

		_, err = service.AddRecipe(context.Background(), 7, 1)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("remove_absent", func(t *testing.T) {
		service := newService(newFakeRepo())

		err := service.RemoveRecipe(context.Background(), 7, 1)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("add_missing_recipe", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		_, err := service.AddRecipe(context.Background(), 7, 42)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
		assert.Empty(t, repo.entries)
	})

	t.Run("independent_users", func(t *testing.T) {
		repo := newFakeRepo()
		service := newService(repo)

		_, err := service.AddRecipe(context.Background(), 7, 1)
		require.NoError(t, err)
		_, err = service.AddRecipe(context.Background(), 8, 1)
		assert.NoError(t, err)
	})
}
