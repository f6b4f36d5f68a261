package ingredient

import "context"

type Repository interface {
	List(context context.Context, namePrefix string) ([]*Ingredient, error)
	GetByID(context context.Context, id int64) (*Ingredient, error)

	// ResolveIDs returns the catalog rows for the given ids, in the order
	// requested. Ids absent from the catalog are simply missing from the
	// result; the caller decides whether that is an error.
	ResolveIDs(context context.Context, ids []int64) ([]*Ingredient, error)
}
