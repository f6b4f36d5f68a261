package schema

// RecipeTagTable represents the 'recipes.recipetag' table
type RecipeTagTable struct {
	Table    string
	RecipeID string
	TagID    string
}

// RecipeTag is the schema definition for recipes.recipetag
var RecipeTag = RecipeTagTable{
	Table:    "recipes.recipetag",
	RecipeID: "recipeid",
	TagID:    "tagid",
}
