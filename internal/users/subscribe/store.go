package subscribe

import "context"

// Repository defines persistence for the subscription ledger and feed.
type Repository interface {
	// Add inserts the follow edge; duplicates surface as a unique
	// violation mapped to a conflict upstream.
	Add(context context.Context, followerID, authorID int64) error

	// Remove deletes the follow edge and reports whether it existed.
	Remove(context context.Context, followerID, authorID int64) (bool, error)

	// Subscription hydrates one feed entry for the given author as seen
	// by the follower. Not-found when the author does not exist.
	Subscription(context context.Context, followerID, authorID int64, recipeLimit int) (*Author, error)

	// List pages through the follower's subscriptions, newest follow
	// first, each entry carrying up to recipeLimit preview recipes.
	List(context context.Context, followerID int64, recipeLimit, limit, offset int) ([]*Author, int, error)
}
