package favorite

import "context"

// Repository defines persistence for the favorites ledger.
type Repository interface {
	// Add inserts the membership row; a duplicate surfaces as a unique
	// violation mapped to a conflict upstream.
	Add(context context.Context, userID, recipeID int64) error

	// Remove deletes the membership row and reports whether it existed.
	Remove(context context.Context, userID, recipeID int64) (bool, error)

	// RecipeCard fetches the compact recipe shape, not-found when missing.
	RecipeCard(context context.Context, recipeID int64) (*Item, error)
}
