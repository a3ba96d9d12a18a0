package entity

import "time"

// Organization represents a tenant of the system (multi-tenant SaaS).
type Organization struct {
	ID        string
	Name      string
	GSTIN     string // Indian GST identification number (optional for unregistered orgs)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaaS modules available per organization (must match the CHECK constraint
// on the org_modules table).
const (
	ModuleBilling   = "billing"
	ModuleExpenses  = "expenses"
	ModulePurchases = "purchases"
	ModuleReports   = "reports"
)

// OrgModule represents a module toggle for an organization.
type OrgModule struct {
	ID          string
	OrgID       string
	ModuleName  string // see Module* constants
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = never expires
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
