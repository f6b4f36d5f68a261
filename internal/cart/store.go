package cart

import "context"

// Repository defines persistence for the cart ledger.
type Repository interface {
	// Add inserts the membership row. A duplicate surfaces as a unique
	// violation from the store, mapped to a conflict upstream.
	Add(context context.Context, userID, recipeID int64) error

	// Remove deletes the membership row and reports whether it existed.
	Remove(context context.Context, userID, recipeID int64) (bool, error)

	// RecipeCard fetches the compact recipe shape for ledger responses.
	// Missing recipes map to a not-found error.
	RecipeCard(context context.Context, recipeID int64) (*Item, error)

	// IngredientRows pulls every ingredient usage across the user's carted
	// recipes, unmerged.
	IngredientRows(context context.Context, userID int64) ([]Row, error)
}
