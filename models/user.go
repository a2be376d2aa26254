package models

// User represents an account entity used for authentication and ownership
// scoping of tasks. Accounts are immutable once created: there are no update
// or delete operations for users anywhere in the application.
type User struct {
	// UserID is the internal unique identifier of the user, assigned
	// monotonically by the repository at creation time.
	UserID int64 `json:"id"`

	// Username is the unique (case-sensitive) login identifier.
	Username string `json:"username"`

	// Password stores the scrypt-derived password blob in the form
	// "hex(digest).hex(salt)". It MUST never reach a client: the field is
	// excluded from JSON serialization.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request payload for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
