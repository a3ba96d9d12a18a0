package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrganizationRequest body for POST /api/organizations.
type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// OrganizationResponse tenant in responses.
type OrganizationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status"`
}

// AddressDTO structured postal address; empty parts are dropped when the
// address is printed.
type AddressDTO struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string     `json:"name"`
	TaxID   string     `json:"tax_id"`
	Email   string     `json:"email,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Address AddressDTO `json:"address,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID      string     `json:"id"`
	OrgID   string     `json:"org_id"`
	Name    string     `json:"name"`
	TaxID   string     `json:"tax_id"`
	Email   string     `json:"email,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Address AddressDTO `json:"address,omitempty"`
}

// CreateDocumentRequest body for POST /api/documents. Line amounts and all
// totals are computed server-side; the client supplies the raw inputs.
type CreateDocumentRequest struct {
	CustomerID      string               `json:"customer_id"`
	DocType         string               `json:"doc_type"` // Invoice | Credit Note | Delivery Challan
	Number          string               `json:"number"`
	Date            time.Time            `json:"date"`
	ReferenceNumber string               `json:"reference_number,omitempty"`
	Items           []DocumentItemInput  `json:"items"`
	Discount        decimal.Decimal      `json:"discount"`      // percentage or flat amount
	DiscountType    string               `json:"discount_type"` // "P" | "A"
	Adjustment      decimal.Decimal      `json:"adjustment"`
	Notes           string               `json:"notes,omitempty"`
	Terms           string               `json:"terms,omitempty"`
}

// DocumentItemInput one requested line (name, quantity, unit, rate).
type DocumentItemInput struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Rate     decimal.Decimal `json:"rate"`
}

// DocumentResponse billing document with items.
type DocumentResponse struct {
	ID              string                 `json:"id"`
	OrgID           string                 `json:"org_id"`
	CustomerID      string                 `json:"customer_id"`
	DocType         string                 `json:"doc_type"`
	Number          string                 `json:"number"`
	Date            string                 `json:"date"`
	ReferenceNumber string                 `json:"reference_number,omitempty"`
	PartyName       string                 `json:"party_name"`
	SubTotal        decimal.Decimal        `json:"sub_total"`
	Discount        decimal.Decimal        `json:"discount"`
	DiscountType    string                 `json:"discount_type,omitempty"`
	DiscountAmount  decimal.Decimal        `json:"discount_amount"`
	Adjustment      decimal.Decimal        `json:"adjustment"`
	GrandTotal      decimal.Decimal        `json:"grand_total"`
	Notes           string                 `json:"notes,omitempty"`
	Terms           string                 `json:"terms,omitempty"`
	Status          string                 `json:"status"`
	Items           []DocumentItemResponse `json:"items,omitempty"`
}

// DocumentItemResponse one line in the response.
type DocumentItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// ChangeStatusRequest body for PATCH /api/documents/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse result of a status change, including where the document
// may move next.
type StatusResponse struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	AllowedNext []string `json:"allowed_next"`
}
