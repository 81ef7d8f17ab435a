package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Decides leave requests, onboards employees
	RoleEmployee Role = "EMPLOYEE" // Marks attendance, requests leave
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the already-authenticated caller of an operation.
type Identity struct {
	UserID string
	Role   Role
}

// IsAuthenticated reports whether the identity carries a user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == RoleAdmin
}

func (i Identity) IsEmployee() bool {
	return i.IsAuthenticated() && i.Role == RoleEmployee
}
