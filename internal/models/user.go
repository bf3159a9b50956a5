package models

// Role distinguishes the two portal access levels.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the public profile returned to clients and embedded in tokens.
type User struct {
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Credential pairs a user with their login password. Passwords never leave
// the process.
type Credential struct {
	User
	Password string `json:"-"`
}

// BuiltinUsers is the fixed demo credential directory. There is no
// registration flow; these two accounts are the entire user base.
var BuiltinUsers = []Credential{
	{User: User{Username: "Student01", Role: RoleStudent, DisplayName: "Arjun Sharma"}, Password: "123456"},
	{User: User{Username: "Admin01", Role: RoleAdmin, DisplayName: "Dr. Priya Verma"}, Password: "123456"},
}
