package cart

import (
	"context"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

// errNotInCart reports a remove for a recipe the cart never held.
var errNotInCart = apperr.NotFound("cart entry")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddRecipe puts a recipe into the user's cart. The recipe is fetched
// first so a missing id yields not-found rather than a dangling ledger
// row; a repeat add surfaces the store's conflict.
func (service *Service) AddRecipe(context context.Context, userID, recipeID int64) (*Item, error) {
	item, err := service.repo.RecipeCard(context, recipeID)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Add(context, userID, recipeID); err != nil {
		return nil, err
	}

	service.logger.Info("cart_recipe_added",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID),
	)

	return item, nil
}

// RemoveRecipe takes a recipe out of the cart. Removing an absent entry is
// an error, not a no-op.
func (service *Service) RemoveRecipe(context context.Context, userID, recipeID int64) error {
	removed, err := service.repo.Remove(context, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return errNotInCart
	}

	service.logger.Info("cart_recipe_removed",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID),
	)

	return nil
}

// ShoppingList builds the consolidated list for download.
func (service *Service) ShoppingList(context context.Context, userID int64) ([]byte, error) {
	rows, err := service.repo.IngredientRows(context, userID)
	if err != nil {
		return nil, err
	}
	return Render(Aggregate(rows)), nil
}
