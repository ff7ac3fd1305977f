package models

// Role is assigned by the identity layer in front of this service.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the caller as reported by the identity layer.
type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may manage the catalog.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
