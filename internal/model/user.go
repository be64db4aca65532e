package model

// Role separates staff from diners.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a static account. Passwords are compared in plaintext against the
// seeded list; this surface is deliberately out of the ordering core.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Role        Role   `json:"role"`
	TableNumber int    `json:"tableNumber,omitempty"`
}

// Session is an authenticated login handed back to the presentation layer.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
