package schema

// RefTagTable represents the 'refs.tag' table
type RefTagTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
	Color string
}

// RefTag is the schema definition for refs.tag
var RefTag = RefTagTable{
	Table: "refs.tag",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
	Color: "color",
}
