package tag

import "context"

// Repository defines the persistence operations for the tag catalog.
type Repository interface {
	Create(context context.Context, tag *Tag) error
	List(context context.Context) ([]*Tag, error)
	GetByID(context context.Context, id int64) (*Tag, error)
	// ResolveIDs returns the tags matching the given ids. Missing ids are
	// simply absent from the result; the caller decides whether that is an
	// error.
	ResolveIDs(context context.Context, ids []int64) ([]*Tag, error)
}
