package domain

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleManager  UserRole = "manager"
)

// IsManager returns true for the manager role
func (r UserRole) IsManager() bool {
	return r == RoleManager
}

// User represents an account in the system
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsManager returns true if the user can manage centres and view all bookings
func (u *User) IsManager() bool {
	return u.Role.IsManager()
}

// ValidRole returns true for a known role value
func ValidRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleManager
}
