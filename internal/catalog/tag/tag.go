// Copyright (c) 2026 Foodgram
//
// Package tag manages the curated recipe tag catalog. Tags are created by
// administrators and referenced by recipes for filtering; regular users only
// read them.
package tag

// Tag is a label a recipe can carry, such as "breakfast" or "dinner".
// The slug is unique and URL safe, the color is a hex triplet used by
// clients when rendering the label.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// CreateTagInput carries the fields for an admin-created tag. Slug is
// optional and derived from the name when empty.
type CreateTagInput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}
