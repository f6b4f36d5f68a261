package recipe

import "context"

// Repository defines persistence for recipes and their junction rows.
//
// Create and Update receive the junction payload alongside the core row and
// must apply everything inside one transaction: a recipe is never visible
// with half its ingredients. Delete removes the junction rows, favorites and
// cart entries before the core row, also transactionally.
type Repository interface {
	Create(context context.Context, recipe *Recipe, ingredients []IngredientRef, tagIDs []int64) error

	// Update rewrites the core row, upserts the ingredient amounts in place,
	// removes ingredient rows absent from the payload and replaces the tag
	// set. Returns apperr.NotFound when the recipe does not exist.
	Update(context context.Context, recipe *Recipe, ingredients []IngredientRef, tagIDs []int64) error

	Delete(context context.Context, id int64) error

	// FindByID hydrates the full read model. viewerID 0 means anonymous and
	// yields false for every viewer-relative flag.
	FindByID(context context.Context, id, viewerID int64) (*Recipe, error)

	List(context context.Context, filter Filter, viewerID int64, limit, offset int) ([]*Recipe, int, error)
}
