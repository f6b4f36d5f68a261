package schema

// RecipeTable represents the 'recipes.recipe' table
type RecipeTable struct {
	Table       string
	ID          string
	AuthorID    string
	Name        string
	Text        string
	Image       string
	CookingTime string
	CreatedAt   string
}

// Recipe is the schema definition for recipes.recipe
var Recipe = RecipeTable{
	Table:       "recipes.recipe",
	ID:          "id",
	AuthorID:    "authorid",
	Name:        "name",
	Text:        "text",
	Image:       "image",
	CookingTime: "cookingtime",
	CreatedAt:   "createdat",
}
