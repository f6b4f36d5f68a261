// Copyright (c) 2026 Foodgram
//
// Package recipe implements the recipe composition engine: authored recipes
// assembled from catalog ingredients with amounts, labelled with curated
// tags, and published with an image.
package recipe

import "time"

// Recipe is the fully hydrated read model. Tags and ingredients are
// denormalized into the row by the store so a single fetch serves the API
// response; the viewer-relative flags (IsFavorited, IsInShoppingCart and
// the author's IsSubscribed) are computed against the requesting user and
// are always false for anonymous viewers.
type Recipe struct {
	ID          int64            `json:"id"`
	Author      AuthorView       `json:"author"`
	Name        string           `json:"name"`
	Text        string           `json:"text"`
	Image       string           `json:"image"`
	CookingTime int64            `json:"cooking_time"`
	Tags        []TagView        `json:"tags"`
	Ingredients []IngredientView `json:"ingredients"`

	IsFavorited      bool `json:"is_favorited"`
	IsInShoppingCart bool `json:"is_in_shopping_cart"`

	CreatedAt time.Time `json:"created_at"`
}

// AuthorView is the recipe author as seen by the viewer.
type AuthorView struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// TagView mirrors the catalog tag inside a recipe response.
type TagView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// IngredientView is a catalog ingredient joined with the amount this recipe
// uses. Amount shares the inclusive bounds of cooking time.
type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// IngredientRef names a catalog ingredient and the amount to use. Write-side
// only; the id must resolve against the catalog.
type IngredientRef struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

// Input carries the writable recipe fields for both create and update.
// Image holds a base64 data URI on intake; on update an empty image keeps
// the stored file.
type Input struct {
	Name        string          `json:"name"`
	Text        string          `json:"text"`
	Image       string          `json:"image"`
	CookingTime int64           `json:"cooking_time"`
	Ingredients []IngredientRef `json:"ingredients"`
	TagIDs      []int64         `json:"tags"`
}

// Filter narrows recipe listings. TagSlugs select recipes carrying ANY of
// the given tags. OnlyFavorited and OnlyInCart are viewer-relative and are
// ignored for anonymous requests.
type Filter struct {
	AuthorID      int64
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
}
