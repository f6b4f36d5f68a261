package schema

// FavoriteTable represents the 'recipes.favorite' table
type FavoriteTable struct {
	Table     string
	UserID    string
	RecipeID  string
	CreatedAt string
}

// Favorite is the schema definition for recipes.favorite
var Favorite = FavoriteTable{
	Table:     "recipes.favorite",
	UserID:    "userid",
	RecipeID:  "recipeid",
	CreatedAt: "createdat",
}
