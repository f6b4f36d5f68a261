package schema

// RecipeIngredientTable represents the 'recipes.recipeingredient' table
type RecipeIngredientTable struct {
	Table        string
	RecipeID     string
	IngredientID string
	Amount       string
}

// RecipeIngredient is the schema definition for recipes.recipeingredient.
// The (recipeid, ingredientid) pair is unique: a recipe never lists the
// same ingredient twice.
var RecipeIngredient = RecipeIngredientTable{
	Table:        "recipes.recipeingredient",
	RecipeID:     "recipeid",
	IngredientID: "ingredientid",
	Amount:       "amount",
}
