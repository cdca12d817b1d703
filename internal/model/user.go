package model

// Role values stored in users.role and carried in the JWT "role" claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application user. Accounts are created at store
// initialization or through registration and are immutable afterwards.
// The bcrypt hash never leaves the server, hence the "-" json tag.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  FullName     – display name shown in usage history views.
//  Role         – "user" or "admin".
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
}
