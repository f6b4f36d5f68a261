package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/catalog/ingredient"
	"github.com/IvanZabelin/foodgram/internal/catalog/tag"
	"github.com/IvanZabelin/foodgram/internal/media"
	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/constants"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/platform/validate"
)

// Validation field identifiers.
const (
	FieldName        = "name"
	FieldText        = "text"
	FieldImage       = "image"
	FieldCookingTime = "cooking_time"
	FieldIngredients = "ingredients"
	FieldTags        = "tags"
	FieldAmount      = "amount"
)

// mediaSubdirRecipes is where recipe images land under the media root.
const mediaSubdirRecipes = "recipes"

// IngredientResolver resolves catalog ingredient ids. Satisfied by the
// ingredient repository.
type IngredientResolver interface {
	ResolveIDs(context context.Context, ids []int64) ([]*ingredient.Ingredient, error)
}

// TagResolver resolves catalog tag ids. Satisfied by the tag repository.
type TagResolver interface {
	ResolveIDs(context context.Context, ids []int64) ([]*tag.Tag, error)
}

// ImageStore persists intake images and removes abandoned ones. Satisfied
// by [media.Store].
type ImageStore interface {
	SaveDataURI(subdir, dataURI string) (string, error)
	Remove(reference string) error
}

type Service struct {
	repo        Repository
	ingredients IngredientResolver
	tags        TagResolver
	images      ImageStore
	logger      *slog.Logger
}

func NewService(repo Repository, ingredients IngredientResolver, tags TagResolver, images ImageStore, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		ingredients: ingredients,
		tags:        tags,
		images:      images,
		logger:      logger,
	}
}

// # Read Path

func (service *Service) GetRecipe(context context.Context, id, viewerID int64) (*Recipe, error) {
	return service.repo.FindByID(context, id, viewerID)
}

func (service *Service) ListRecipes(context context.Context, filter Filter, viewerID int64, limit, offset int) ([]*Recipe, int, error) {
	if viewerID == 0 {
		// Viewer-relative filters are meaningless without a viewer.
		filter.OnlyFavorited = false
		filter.OnlyInCart = false
	}
	return service.repo.List(context, filter, viewerID, limit, offset)
}

// # Write Path

// CreateRecipe validates the composition, stores the intake image, resolves
// every catalog reference and persists the recipe with its junction rows.
func (service *Service) CreateRecipe(context context.Context, author *sec.AuthClaims, input Input) (*Recipe, error) {
	if err := service.validateInput(input, true); err != nil {
		return nil, err
	}
	if err := service.resolveReferences(context, input); err != nil {
		return nil, err
	}

	imagePath, err := service.images.SaveDataURI(mediaSubdirRecipes, input.Image)
	if err != nil {
		return nil, err
	}

	recipe := &Recipe{
		Author:      AuthorView{ID: author.UserID},
		Name:        input.Name,
		Text:        input.Text,
		Image:       imagePath,
		CookingTime: input.CookingTime,
	}

	if err := service.repo.Create(context, recipe, input.Ingredients, input.TagIDs); err != nil {
		service.removeImage(imagePath)
		return nil, err
	}

	service.logger.Info("recipe_created",
		slog.Int64("recipe_id", recipe.ID),
		slog.Int64("author_id", author.UserID),
		slog.Int("ingredient_count", len(input.Ingredients)),
	)

	return service.repo.FindByID(context, recipe.ID, author.UserID)
}

// UpdateRecipe replaces the composition of an existing recipe. Only the
// author or an administrator may update; authorization is checked before
// payload validation so a forbidden caller learns nothing about the
// payload's validity.
func (service *Service) UpdateRecipe(context context.Context, viewer *sec.AuthClaims, id int64, input Input) (*Recipe, error) {
	existing, err := service.repo.FindByID(context, id, viewer.UserID)
	if err != nil {
		return nil, err
	}
	if err := authorize(viewer, existing.Author.ID); err != nil {
		return nil, err
	}

	if err := service.validateInput(input, false); err != nil {
		return nil, err
	}
	if err := service.resolveReferences(context, input); err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if input.Image != "" {
		imagePath, err = service.images.SaveDataURI(mediaSubdirRecipes, input.Image)
		if err != nil {
			return nil, err
		}
	}

	recipe := &Recipe{
		ID:          id,
		Name:        input.Name,
		Text:        input.Text,
		Image:       imagePath,
		CookingTime: input.CookingTime,
	}

	if err := service.repo.Update(context, recipe, input.Ingredients, input.TagIDs); err != nil {
		if imagePath != existing.Image {
			service.removeImage(imagePath)
		}
		return nil, err
	}

	if imagePath != existing.Image {
		service.removeImage(existing.Image)
	}

	service.logger.Info("recipe_updated",
		slog.Int64("recipe_id", id),
		slog.Int64("editor_id", viewer.UserID),
	)

	return service.repo.FindByID(context, id, viewer.UserID)
}

// DeleteRecipe removes a recipe and all rows referencing it. Author or
// administrator only.
func (service *Service) DeleteRecipe(context context.Context, viewer *sec.AuthClaims, id int64) error {
	existing, err := service.repo.FindByID(context, id, viewer.UserID)
	if err != nil {
		return err
	}
	if err := authorize(viewer, existing.Author.ID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.removeImage(existing.Image)

	service.logger.Info("recipe_deleted",
		slog.Int64("recipe_id", id),
		slog.Int64("editor_id", viewer.UserID),
	)

	return nil
}

// ShortLinkPath returns the server-relative short link for a recipe. The
// HTTP layer prefixes the public base URL.
func (service *Service) ShortLinkPath(context context.Context, id int64) (string, error) {
	if _, err := service.repo.FindByID(context, id, 0); err != nil {
		return "", err
	}
	return fmt.Sprintf("/s/%d", id), nil
}

// # Internals

// removeImage deletes a stored image file. Cleanup failures leave an
// orphaned file behind, never fail the calling operation.
func (service *Service) removeImage(reference string) {
	if err := service.images.Remove(reference); err != nil {
		service.logger.Debug("image_cleanup_failed",
			slog.String("reference", reference),
			slog.Any("error", err),
		)
	}
}

func authorize(viewer *sec.AuthClaims, authorID int64) error {
	if viewer.UserID == authorID {
		return nil
	}
	if sec.UserRole(viewer.Role).AtLeast(sec.RoleAdmin) {
		return nil
	}
	return apperr.Forbidden("Only the author can modify this recipe")
}

// validateInput checks everything that does not require a database trip.
// Bounds violations are rejected, never clamped.
func (service *Service) validateInput(input Input, imageRequired bool) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.MaxLen(FieldName, input.Name, constants.MaxNameLength)
	validator.Required(FieldText, input.Text)
	validator.Range(FieldCookingTime, input.CookingTime, constants.MinValue, constants.MaxValue)

	if imageRequired {
		validator.Required(FieldImage, input.Image)
	}
	if input.Image != "" {
		validator.Custom(FieldImage, !media.IsDataURI(input.Image), "Image must be a base64 data URI")
	}

	validator.Custom(FieldIngredients, len(input.Ingredients) == 0, "At least one ingredient is required")
	validator.Custom(FieldTags, len(input.TagIDs) == 0, "At least one tag is required")

	seenIngredients := make(map[int64]bool, len(input.Ingredients))
	for _, ref := range input.Ingredients {
		if seenIngredients[ref.ID] {
			validator.Custom(FieldIngredients, true,
				fmt.Sprintf("Ingredient %d is listed more than once", ref.ID))
			continue
		}
		seenIngredients[ref.ID] = true
		validator.Range(FieldAmount, ref.Amount, constants.MinValue, constants.MaxValue)
	}

	seenTags := make(map[int64]bool, len(input.TagIDs))
	for _, tagID := range input.TagIDs {
		if seenTags[tagID] {
			validator.Custom(FieldTags, true,
				fmt.Sprintf("Tag %d is listed more than once", tagID))
			continue
		}
		seenTags[tagID] = true
	}

	return validator.Err()
}

// resolveReferences verifies every ingredient and tag id against the
// catalogs. A missing id is a reference error, not a validation error: the
// payload is well formed but points at nothing.
func (service *Service) resolveReferences(context context.Context, input Input) error {
	ingredientIDs := make([]int64, 0, len(input.Ingredients))
	for _, ref := range input.Ingredients {
		ingredientIDs = append(ingredientIDs, ref.ID)
	}

	resolved, err := service.ingredients.ResolveIDs(context, ingredientIDs)
	if err != nil {
		return err
	}
	if len(resolved) != len(ingredientIDs) {
		return apperr.ReferenceNotFound("ingredient")
	}

	resolvedTags, err := service.tags.ResolveIDs(context, input.TagIDs)
	if err != nil {
		return err
	}
	if len(resolvedTags) != len(input.TagIDs) {
		return apperr.ReferenceNotFound("tag")
	}

	return nil
}
