package entity

import "time"

// User roles.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

// User represents an application user belonging to an organization.
type User struct {
	ID           string
	OrgID        string
	Email        string
	PasswordHash string
	Name         string
	Role         string // see Role* constants
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
