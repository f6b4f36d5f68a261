package schema

// UserSubscribeTable represents the 'users.subscribe' table
type UserSubscribeTable struct {
	Table      string
	FollowerID string
	AuthorID   string
	CreatedAt  string
}

// UserSubscribe is the schema definition for users.subscribe
var UserSubscribe = UserSubscribeTable{
	Table:      "users.subscribe",
	FollowerID: "followerid",
	AuthorID:   "authorid",
	CreatedAt:  "createdat",
}
