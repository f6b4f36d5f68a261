package ingredient

// Ingredient is a flat reference-catalog entry: a name plus the unit its
// amounts are measured in.
//
// Names are NOT unique in the dataset (e.g. two "соль" rows with different
// units), so consumers that merge across recipes must key on the
// (name, measurement_unit) pair, never on the id.
type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}
