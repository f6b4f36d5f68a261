package schema

// RefIngredientTable represents the 'refs.ingredient' table
type RefIngredientTable struct {
	Table           string
	ID              string
	Name            string
	MeasurementUnit string
}

// RefIngredient is the schema definition for refs.ingredient
var RefIngredient = RefIngredientTable{
	Table:           "refs.ingredient",
	ID:              "id",
	Name:            "name",
	MeasurementUnit: "measurementunit",
}
