package auth

// Role is the authorization level carried by a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the authenticated identity as persisted to client storage.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session pairs the authenticated user with their bearer credential.
type Session struct {
	User  User
	Token string
}

// loginResponse is the live backend's POST /auth body.
type loginResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}
