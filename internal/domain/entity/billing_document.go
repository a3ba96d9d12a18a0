package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document categories. The same header/items/totals structure backs all three.
const (
	DocTypeInvoice         = "Invoice"
	DocTypeCreditNote      = "Credit Note"
	DocTypeDeliveryChallan = "Delivery Challan"
)

// Discount discriminator: percentage of the subtotal or a flat amount.
const (
	DiscountTypePercent = "P"
	DiscountTypeAmount  = "A"
)

// Address is a structured postal address. Empty parts are dropped when
// formatting.
type Address struct {
	Street  string
	City    string
	State   string
	Country string
	Zip     string
}

// Format joins the non-empty address parts with commas.
func (a Address) Format() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Country, a.Zip} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// BillingDocument is the header of an invoice, credit note or delivery
// challan, together with its line items and computed totals.
//
// Totals invariant: GrandTotal = SubTotal − DiscountAmount + Adjustment,
// every amount rounded to 2 decimal places.
type BillingDocument struct {
	ID         string
	OrgID      string
	CustomerID string

	DocType         string // see DocType* constants
	Number          string
	Date            time.Time
	ReferenceNumber string

	PartyName    string
	PartyAddress Address

	Items []DocumentItem

	SubTotal       decimal.Decimal
	Discount       decimal.Decimal // percentage when DiscountType == "P", flat amount when "A"
	DiscountType   string
	DiscountAmount decimal.Decimal
	Adjustment     decimal.Decimal // signed
	GrandTotal     decimal.Decimal

	Notes string
	Terms string

	Status    string // see internal/domain/document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentItem is one ordered line of a billing document.
type DocumentItem struct {
	ID         string
	DocumentID string
	Name       string
	Quantity   decimal.Decimal
	Unit       string // pcs, kg, hrs, ...
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}

// totalsTolerance allows for the 2dp rounding of each term.
var totalsTolerance = decimal.New(1, -2) // 0.01

// TotalsConsistent reports whether the stored totals satisfy
// |subtotal − discount + adjustment − grand| < 0.01.
func (d *BillingDocument) TotalsConsistent() bool {
	diff := d.SubTotal.Sub(d.DiscountAmount).Add(d.Adjustment).Sub(d.GrandTotal).Abs()
	return diff.LessThan(totalsTolerance)
}
