package schema

// ShoppingCartTable represents the 'recipes.shoppingcart' table
type ShoppingCartTable struct {
	Table    string
	UserID   string
	RecipeID string
}

// ShoppingCart is the schema definition for recipes.shoppingcart
var ShoppingCart = ShoppingCartTable{
	Table:    "recipes.shoppingcart",
	UserID:   "userid",
	RecipeID: "recipeid",
}
