// Copyright (c) 2026 Foodgram

package cart_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanZabelin/foodgram/internal/cart"
	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

/*
TestAggregate_MergesOnNameAndUnit checks the core consolidation rule:
amounts sum when both the name and the unit match, and the same name under
different units stays split.
*/
func TestAggregate_MergesOnNameAndUnit(t *testing.T) {
	rows := []cart.Row{
		{Name: "salt", MeasurementUnit: "g", Amount: 5},
		{Name: "salt", MeasurementUnit: "g", Amount: 7},
		{Name: "salt", MeasurementUnit: "pinch", Amount: 1},
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
	}

	lines := cart.Aggregate(rows)

	assert.Equal(t, []cart.Line{
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "salt", MeasurementUnit: "g", Amount: 12},
		{Name: "salt", MeasurementUnit: "pinch", Amount: 1},
	}, lines)
}

/*
TestAggregate_DistinctCatalogRowsSameNameUnit models two catalog entries
sharing a name and unit: their amounts still merge because the key is the
pair, not the id.
*/
func TestAggregate_DistinctCatalogRowsSameNameUnit(t *testing.T) {
	// Both rows came from different catalog ids upstream.
	rows := []cart.Row{
		{Name: "сахар", MeasurementUnit: "г", Amount: 10},
		{Name: "сахар", MeasurementUnit: "г", Amount: 15},
	}

	lines := cart.Aggregate(rows)

	require.Len(t, lines, 1)
	assert.Equal(t, int64(25), lines[0].Amount)
}

/*
TestAggregate_Empty yields an empty list, not nil panics.
*/
func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, cart.Aggregate(nil))
}

/*
TestRender formats one line per consolidated entry.
*/
func TestRender(t *testing.T) {
	body := cart.Render([]cart.Line{
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "salt", MeasurementUnit: "g", Amount: 12},
	})

	text := string(body)
	assert.Contains(t, text, "- flour (g): 200")
	assert.Contains(t, text, "- salt (g): 12")
}

// # Ledger

type fakeCartRepo struct {
	entries map[[2]int64]bool
	cards   map[int64]*cart.Item
	rows    []cart.Row
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		entries: map[[2]int64]bool{},
		cards: map[int64]*cart.Item{
			1: {ID: 1, Name: "Syrniki", Image: "recipes/a.png", CookingTime: 20},
		},
	}
}

func (repo *fakeCartRepo) Add(_ context.Context, userID, recipeID int64) error {
	key := [2]int64{userID, recipeID}
	if repo.entries[key] {
		return apperr.Conflict("Entry already exists")
	}
	repo.entries[key] = true
	return nil
}

func (repo *fakeCartRepo) Remove(_ context.Context, userID, recipeID int64) (bool, error) {
	key := [2]int64{userID, recipeID}
	if !repo.entries[key] {
		return false, nil
	}
	delete(repo.entries, key)
	return true, nil
}

func (repo *fakeCartRepo) RecipeCard(_ context.Context, recipeID int64) (*cart.Item, error) {
	card, ok := repo.cards[recipeID]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	return card, nil
}

func (repo *fakeCartRepo) IngredientRows(_ context.Context, _ int64) ([]cart.Row, error) {
	return repo.rows, nil
}

func newCartService(repo *fakeCartRepo) *cart.Service {
	return cart.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCartLedger drives the membership rules: first add succeeds, repeat add
conflicts, remove of an absent entry is not-found, and adds against missing
recipes never create ledger rows.
*/
func TestCartLedger(t *testing.T) {
	t.Run("add_then_duplicate", func(t *testing.T) {
		repo := newFakeCartRepo()
		service := newCartService(repo)

		item, err := service.AddRecipe(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.Equal(t, "Syrniki", item.Name)

		_, err = service.AddRecipe(context.Background(), 7, 1)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("remove_absent", func(t *testing.T) {
		service := newCartService(newFakeCartRepo())

		err := service.RemoveRecipe(context.Background(), 7, 1)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("add_missing_recipe", func(t *testing.T) {
		repo := newFakeCartRepo()
		service := newCartService(repo)

		_, err := service.AddRecipe(context.Background(), 7, 999)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
		assert.Empty(t, repo.entries)
	})
}

/*
TestShoppingList renders the consolidated download body from the fake rows.
*/
func TestShoppingList(t *testing.T) {
	repo := newFakeCartRepo()
	repo.rows = []cart.Row{
		{Name: "salt", MeasurementUnit: "g", Amount: 5},
		{Name: "salt", MeasurementUnit: "g", Amount: 3},
	}
	service := newCartService(repo)

	body, err := service.ShoppingList(context.Background(), 7)
	require.NoError(t, err)
	assert.Contains(t, string(body), "- salt (g): 8")
}
