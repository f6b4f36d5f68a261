// Copyright (c) 2026 Foodgram
//
// Package subscribe implements the author subscription ledger and the
// subscriptions feed: followed authors together with a capped preview of
// their recipes.
package subscribe

// RecipeCard is the compact recipe shape embedded in a subscription entry.
type RecipeCard struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int64  `json:"cooking_time"`
}

// Author is one subscription feed entry: the followed author plus their
// newest recipes. Recipes holds at most the requested preview limit while
// RecipesCount reports the full total.
type Author struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Avatar       string       `json:"avatar"`
	IsSubscribed bool         `json:"is_subscribed"`
	Recipes      []RecipeCard `json:"recipes"`
	RecipesCount int          `json:"recipes_count"`
}

// DefaultRecipePreviewLimit caps embedded recipes when the client does not
// ask for a specific limit.
const DefaultRecipePreviewLimit = 3
