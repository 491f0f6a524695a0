package auth

// Roles, least to most privileged.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// IsEditor reports whether the user may manage menus, events and imports.
func (u *User) IsEditor() bool {
	return u.Role == RoleEditor || u.Role == RoleAdmin
}
