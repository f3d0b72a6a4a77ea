package models

// Role tells which profile table a user row belongs to.
type Role string

const (
	RoleDriver     Role = "driver"
	RoleDispatcher Role = "dispatcher"
)

// User represents the credentials shared by drivers and dispatchers.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the plaintext password supplied by a client request.
	// It is replaced by PassHash before anything is stored.
	Password string `json:"password,omitempty"`

	// PassHash is the digest produced by crypto.PasswordHasher.
	PassHash string `json:"-"`

	Role Role `json:"role,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
