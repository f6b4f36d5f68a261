// Copyright (c) 2026 Foodgram

package recipe_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanZabelin/foodgram/internal/catalog/ingredient"
	"github.com/IvanZabelin/foodgram/internal/catalog/tag"
	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/recipe"
)

// # Fakes

type fakeRepo struct {
	recipes map[int64]*recipe.Recipe
	nextID  int64

	lastIngredients []recipe.IngredientRef
	lastTagIDs      []int64
	deleted         []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{recipes: map[int64]*recipe.Recipe{}, nextID: 1}
}

func (repo *fakeRepo) Create(_ context.Context, r *recipe.Recipe, ingredients []recipe.IngredientRef, tagIDs []int64) error {
	r.ID = repo.nextID
	repo.nextID++
	repo.recipes[r.ID] = r
	repo.lastIngredients = ingredients
	repo.lastTagIDs = tagIDs
	return nil
}

func (repo *fakeRepo) Update(_ context.Context, r *recipe.Recipe, ingredients []recipe.IngredientRef, tagIDs []int64) error {
	existing, ok := repo.recipes[r.ID]
	if !ok {
		return apperr.NotFound("recipe")
	}
	existing.Name = r.Name
	existing.Text = r.Text
	existing.Image = r.Image
	existing.CookingTime = r.CookingTime
	repo.lastIngredients = ingredients
	repo.lastTagIDs = tagIDs
	return nil
}

func (repo *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := repo.recipes[id]; !ok {
		return apperr.NotFound("recipe")
	}
	delete(repo.recipes, id)
	repo.deleted = append(repo.deleted, id)
	return nil
}

func (repo *fakeRepo) FindByID(_ context.Context, id, _ int64) (*recipe.Recipe, error) {
	r, ok := repo.recipes[id]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	return r, nil
}

func (repo *fakeRepo) List(_ context.Context, _ recipe.Filter, _ int64, _, _ int) ([]*recipe.Recipe, int, error) {
	out := make([]*recipe.Recipe, 0, len(repo.recipes))
	for _, r := range repo.recipes {
		out = append(out, r)
	}
	return out, len(out), nil
}

// fakeCatalogs resolves any id below 100; everything else is missing.
type fakeCatalogs struct{}

func (fakeCatalogs) ResolveIDs(_ context.Context, ids []int64) ([]*ingredient.Ingredient, error) {
	out := make([]*ingredient.Ingredient, 0, len(ids))
	for _, id := range ids {
		if id < 100 {
			out = append(out, &ingredient.Ingredient{ID: id, Name: "salt", MeasurementUnit: "g"})
		}
	}
	return out, nil
}

type fakeTagCatalog struct{}

func (fakeTagCatalog) ResolveIDs(_ context.Context, ids []int64) ([]*tag.Tag, error) {
	out := make([]*tag.Tag, 0, len(ids))
	for _, id := range ids {
		if id < 100 {
			out = append(out, &tag.Tag{ID: id, Name: "breakfast", Slug: "breakfast", Color: "#E26C2D"})
		}
	}
	return out, nil
}

type fakeImages struct {
	saved     []string
	removed   []string
	removeErr error
}

func (images *fakeImages) SaveDataURI(subdir, _ string) (string, error) {
	path := subdir + "/image.png"
	images.saved = append(images.saved, path)
	return path, nil
}

func (images *fakeImages) Remove(reference string) error {
	if images.removeErr != nil {
		return images.removeErr
	}
	images.removed = append(images.removed, reference)
	return nil
}

// # Helpers

const testImage = "data:image/png;base64,iVBORw0KGgo="

func newTestService(repo *fakeRepo) (*recipe.Service, *fakeImages) {
	images := &fakeImages{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return recipe.NewService(repo, fakeCatalogs{}, fakeTagCatalog{}, images, logger), images
}

func member(id int64) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleMember)}
}

func admin(id int64) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleAdmin)}
}

func validInput() recipe.Input {
	return recipe.Input{
		Name:        "Syrniki",
		Text:        "Mix and fry.",
		Image:       testImage,
		CookingTime: 20,
		Ingredients: []recipe.IngredientRef{{ID: 1, Amount: 10}, {ID: 2, Amount: 5}},
		TagIDs:      []int64{1, 2},
	}
}

/*
TestCreateRecipe_Valid checks the happy path end to end against the fakes.
*/
func TestCreateRecipe_Valid(t *testing.T) {
	repo := newFakeRepo()
	service, images := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(7), created.Author.ID)
	assert.Equal(t, "Syrniki", created.Name)
	assert.Len(t, repo.lastIngredients, 2)
	assert.Equal(t, []int64{1, 2}, repo.lastTagIDs)
	assert.Len(t, images.saved, 1)
}

/*
TestCreateRecipe_Validation drives the rejection matrix: bounds are
rejected outright, never clamped, and both junction lists must be present
and duplicate free.
*/
func TestCreateRecipe_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*recipe.Input)
	}{
		{"empty_name", func(in *recipe.Input) { in.Name = "" }},
		{"empty_text", func(in *recipe.Input) { in.Text = "" }},
		{"missing_image", func(in *recipe.Input) { in.Image = "" }},
		{"image_not_data_uri", func(in *recipe.Input) { in.Image = "http://example.com/a.png" }},
		{"cooking_time_zero", func(in *recipe.Input) { in.CookingTime = 0 }},
		{"cooking_time_above_max", func(in *recipe.Input) { in.CookingTime = 101 }},
		{"no_ingredients", func(in *recipe.Input) { in.Ingredients = nil }},
		{"no_tags", func(in *recipe.Input) { in.TagIDs = nil }},
		{"duplicate_ingredient", func(in *recipe.Input) {
			in.Ingredients = []recipe.IngredientRef{{ID: 1, Amount: 5}, {ID: 1, Amount: 7}}
		}},
		{"duplicate_tag", func(in *recipe.Input) { in.TagIDs = []int64{1, 1} }},
		{"amount_zero", func(in *recipe.Input) {
			in.Ingredients = []recipe.IngredientRef{{ID: 1, Amount: 0}}
		}},
		{"amount_above_max", func(in *recipe.Input) {
			in.Ingredients = []recipe.IngredientRef{{ID: 1, Amount: 101}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(newFakeRepo())

			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateRecipe(context.Background(), member(1), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestCreateRecipe_BoundaryAmounts confirms the inclusive ends of the range
are accepted.
*/
func TestCreateRecipe_BoundaryAmounts(t *testing.T) {
	service, _ := newTestService(newFakeRepo())

	input := validInput()
	input.CookingTime = 1
	input.Ingredients = []recipe.IngredientRef{{ID: 1, Amount: 1}, {ID: 2, Amount: 100}}

	_, err := service.CreateRecipe(context.Background(), member(1), input)
	assert.NoError(t, err)
}

/*
TestCreateRecipe_UnknownReferences checks that well-formed payloads naming
absent catalog rows fail with a reference error, distinct from validation.
*/
func TestCreateRecipe_UnknownReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*recipe.Input)
	}{
		{"unknown_ingredient", func(in *recipe.Input) {
			in.Ingredients = []recipe.IngredientRef{{ID: 999, Amount: 5}}
		}},
		{"unknown_tag", func(in *recipe.Input) { in.TagIDs = []int64{999} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, images := newTestService(newFakeRepo())

			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateRecipe(context.Background(), member(1), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "REFERENCE_NOT_FOUND", ae.Code)

			// Reference resolution runs before the image is stored.
			assert.Empty(t, images.saved)
		})
	}
}

/*
TestUpdateRecipe_Authorization verifies only the author or an admin can
modify, and that the forbidden path wins over payload validation.
*/
func TestUpdateRecipe_Authorization(t *testing.T) {
	repo := newFakeRepo()
	service, _ := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)

	t.Run("stranger_forbidden", func(t *testing.T) {
		// The payload is also invalid; authorization must fail first.
		_, err := service.UpdateRecipe(context.Background(), member(8), created.ID, recipe.Input{})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("author_allowed", func(t *testing.T) {
		input := validInput()
		input.Name = "Updated syrniki"
		updated, err := service.UpdateRecipe(context.Background(), member(7), created.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "Updated syrniki", updated.Name)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		input := validInput()
		input.Name = "Moderated"
		_, err := service.UpdateRecipe(context.Background(), admin(99), created.ID, input)
		assert.NoError(t, err)
	})

	t.Run("missing_recipe", func(t *testing.T) {
		_, err := service.UpdateRecipe(context.Background(), member(7), 12345, validInput())
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

/*
TestUpdateRecipe_ReplacesComposition checks the payload's junction lists
are handed to the store verbatim: the update is a full replacement of the
composition, not a merge.
*/
func TestUpdateRecipe_ReplacesComposition(t *testing.T) {
	repo := newFakeRepo()
	service, _ := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Ingredients = []recipe.IngredientRef{{ID: 3, Amount: 42}}
	input.TagIDs = []int64{5}

	_, err = service.UpdateRecipe(context.Background(), member(7), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, []recipe.IngredientRef{{ID: 3, Amount: 42}}, repo.lastIngredients)
	assert.Equal(t, []int64{5}, repo.lastTagIDs)
}

/*
TestUpdateRecipe_IdempotentForFixedPayload applies one fixed payload twice
and checks the second apply is a no-op: the recipe fields and the junction
lists handed to the store come out identical both times.
*/
func TestUpdateRecipe_IdempotentForFixedPayload(t *testing.T) {
	repo := newFakeRepo()
	service, _ := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Name = "Syrniki v2"
	input.Image = ""
	input.Ingredients = []recipe.IngredientRef{{ID: 3, Amount: 42}, {ID: 4, Amount: 7}}
	input.TagIDs = []int64{5, 6}

	first, err := service.UpdateRecipe(context.Background(), member(7), created.ID, input)
	require.NoError(t, err)

	firstName, firstText := first.Name, first.Text
	firstImage, firstTime := first.Image, first.CookingTime
	firstIngredients := append([]recipe.IngredientRef(nil), repo.lastIngredients...)
	firstTagIDs := append([]int64(nil), repo.lastTagIDs...)

	second, err := service.UpdateRecipe(context.Background(), member(7), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, firstName, second.Name)
	assert.Equal(t, firstText, second.Text)
	assert.Equal(t, firstImage, second.Image)
	assert.Equal(t, firstTime, second.CookingTime)
	assert.Equal(t, firstIngredients, repo.lastIngredients)
	assert.Equal(t, firstTagIDs, repo.lastTagIDs)
}

/*
TestUpdateRecipe_KeepsImageWhenOmitted checks that an empty image on
update leaves the stored file alone.
*/
func TestUpdateRecipe_KeepsImageWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	service, images := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Image = ""

	updated, err := service.UpdateRecipe(context.Background(), member(7), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, created.Image, updated.Image)
	assert.Empty(t, images.removed)
}

/*
TestDeleteRecipe covers deletion authorization and image cleanup.
*/
func TestDeleteRecipe(t *testing.T) {
	t.Run("author_deletes", func(t *testing.T) {
		repo := newFakeRepo()
		service, images := newTestService(repo)

		created, err := service.CreateRecipe(context.Background(), member(7), validInput())
		require.NoError(t, err)

		require.NoError(t, service.DeleteRecipe(context.Background(), member(7), created.ID))
		assert.Equal(t, []int64{created.ID}, repo.deleted)
		assert.Contains(t, images.removed, created.Image)
	})

	t.Run("stranger_forbidden", func(t *testing.T) {
		repo := newFakeRepo()
		service, _ := newTestService(repo)

		created, err := service.CreateRecipe(context.Background(), member(7), validInput())
		require.NoError(t, err)

		err = service.DeleteRecipe(context.Background(), member(8), created.ID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("missing_recipe", func(t *testing.T) {
		service, _ := newTestService(newFakeRepo())

		err := service.DeleteRecipe(context.Background(), member(7), 555)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("image_cleanup_failure_ignored", func(t *testing.T) {
		repo := newFakeRepo()
		service, images := newTestService(repo)

		created, err := service.CreateRecipe(context.Background(), member(7), validInput())
		require.NoError(t, err)

		// The recipe row is gone; a failed file removal only leaves an
		// orphaned file behind.
		images.removeErr = errors.New("disk gone")
		assert.NoError(t, service.DeleteRecipe(context.Background(), member(7), created.ID))
		assert.Equal(t, []int64{created.ID}, repo.deleted)
	})
}

/*
TestShortLinkPath checks the server-relative short link shape.
*/
func TestShortLinkPath(t *testing.T) {
	repo := newFakeRepo()
	service, _ := newTestService(repo)

	created, err := service.CreateRecipe(context.Background(), member(7), validInput())
	require.NoError(t, err)

	path, err := service.ShortLinkPath(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/s/1", path)

	_, err = service.ShortLinkPath(context.Background(), 999)
	assert.Error(t, err)
}
