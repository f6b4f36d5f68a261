package favorite

import (
	"context"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddRecipe marks a recipe as a favorite. The recipe must exist; a repeat
// add is a conflict.
func (service *Service) AddRecipe(context context.Context, userID, recipeID int64) (*Item, error) {
	item, err := service.repo.RecipeCard(context, recipeID)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Add(context, userID, recipeID); err != nil {
		return nil, err
	}

	service.logger.Info("favorite_added",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID),
	)

	return item, nil
}

// RemoveRecipe unmarks a favorite. Removing an entry that was never set is
// an error.
func (service *Service) RemoveRecipe(context context.Context, userID, recipeID int64) error {
	removed, err := service.repo.Remove(context, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("favorite entry")
	}

	service.logger.Info("favorite_removed",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID),
	)

	return nil
}
