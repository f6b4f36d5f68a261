// Copyright (c) 2026 Foodgram
//
// Package favorite implements the per-user favorites ledger over recipes.
package favorite

// Item is the compact recipe shape returned when a favorite is added.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int64  `json:"cooking_time"`
}
