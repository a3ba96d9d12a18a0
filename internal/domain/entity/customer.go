package entity

import "time"

// Customer represents a billing counterparty of the organization.
type Customer struct {
	ID        string
	OrgID     string
	Name      string
	TaxID     string // GSTIN or PAN
	Email     string
	Phone     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
