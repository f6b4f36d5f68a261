package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Avatar       string
	Role         string
	CreatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	FirstName:    "firstname",
	LastName:     "lastname",
	PasswordHash: "passwordhash",
	Avatar:       "avatar",
	Role:         "role",
	CreatedAt:    "createdat",
}
