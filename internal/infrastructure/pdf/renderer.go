// Package pdf renders the printable representation of a billing document.
//
// Layout of the A4 page (595.28 × 841.89 pt):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: issuer name/address/contact  │  TITLE + No/Date/Ref │
//	│  ──────────────────────────────────────────────────────────  │
//	│  BILL TO: party name + formatted address                     │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLE: # | Description | Qty | Unit | Rate | Amount         │
//	│  ... one 25pt row per item, paginated at pageHeight−200 ...  │
//	│  TOTALS: Sub Total / Discount / Adjustment / ┃Total┃        │
//	│  In Words: ... · Notes · Terms · Signature · Footer          │
//	└──────────────────────────────────────────────────────────────┘
//
// Rows are never split across pages: when the cursor passes the threshold
// the whole row moves to the top of a fresh page. Output is byte-for-byte
// reproducible for a fixed clock; the clock feeds both the footer text and
// the PDF creation date.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/numwords"
)

// Generator implements billing.DocumentPDFGenerator with direct
// coordinate placement on fixed-size pages.
type Generator struct {
	now func() time.Time
}

// NewGenerator builds a generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock fixes the clock. Golden and idempotence tests use
// this to get reproducible bytes.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// GenerateDocumentPDF lays the document out onto one or more pages and
// returns the serialized PDF. All-or-nothing: any failed drawing step
// returns an error and no bytes. The input document is not mutated.
func (g *Generator) GenerateDocumentPDF(_ context.Context, org *entity.Organization, doc *entity.BillingDocument) ([]byte, error) {
	if doc == nil || org == nil {
		return nil, fmt.Errorf("pdf: render: nil document or organization")
	}
	if doc.GrandTotal.IsNegative() {
		return nil, fmt.Errorf("pdf: render %s: negative grand total %s", doc.Number, doc.GrandTotal)
	}

	p := gofpdf.New("P", "pt", "A4", "")
	p.SetCreationDate(g.now())
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	g.drawHeader(p, org, doc)
	g.drawTableHead(p)

	cur := StartCursor()
	for i, item := range doc.Items {
		placed, newPage := cur.Place()
		if newPage {
			p.AddPage()
		}
		g.drawItemRow(p, placed.Y, i+1, item)
		cur = placed.Advance()
	}

	y := g.drawTotals(p, cur.Y+10, doc)
	g.drawFreeText(p, y, doc)
	g.drawSignature(p)
	g.drawFooter(p)

	if p.Err() {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Number, p.Error())
	}
	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Number, err)
	}
	return buf.Bytes(), nil
}

// drawHeader paints the issuer block, the document title and the
// number/date/reference/type fields, then the counterparty block.
func (g *Generator) drawHeader(p *gofpdf.Fpdf, org *entity.Organization, doc *entity.BillingDocument) {
	p.SetFont("Helvetica", "B", 16)
	p.Text(leftMargin, 62, org.Name)
	p.SetFont("Helvetica", "", 9)
	if org.Address != "" {
		p.Text(leftMargin, 78, org.Address)
	}
	contact := org.Phone
	if org.Email != "" {
		if contact != "" {
			contact += " · "
		}
		contact += org.Email
	}
	if contact != "" {
		p.Text(leftMargin, 91, contact)
	}
	if org.GSTIN != "" {
		p.Text(leftMargin, 104, "GSTIN: "+org.GSTIN)
	}

	p.SetFont("Helvetica", "B", 14)
	g.textRight(p, rightEdge, 62, doc.DocType)
	p.SetFont("Helvetica", "", 9)
	g.textRight(p, rightEdge, 80, "No: "+doc.Number)
	g.textRight(p, rightEdge, 93, "Date: "+doc.Date.Format("02 Jan 2006"))
	fieldY := 106.0
	if doc.ReferenceNumber != "" {
		g.textRight(p, rightEdge, fieldY, "Ref: "+doc.ReferenceNumber)
		fieldY += 13
	}
	g.textRight(p, rightEdge, fieldY, "Type: "+doc.DocType)

	p.SetLineWidth(0.8)
	p.Line(leftMargin, 125, rightEdge, 125)

	label := "Bill To"
	if doc.DocType == entity.DocTypeDeliveryChallan {
		label = "Deliver To"
	}
	p.SetFont("Helvetica", "B", 9)
	p.Text(leftMargin, 150, label)
	p.SetFont("Helvetica", "B", 11)
	p.Text(leftMargin, 168, doc.PartyName)
	if addr := doc.PartyAddress.Format(); addr != "" {
		p.SetFont("Helvetica", "", 9)
		p.Text(leftMargin, 183, addr)
	}
}

// drawTableHead paints the fixed column header at its first-page anchor.
func (g *Generator) drawTableHead(p *gofpdf.Fpdf) {
	p.SetFont("Helvetica", "B", 9)
	p.Text(colIndexX, tableHeadY, "#")
	p.Text(colNameX, tableHeadY, "Description")
	g.textRight(p, colQtyRight, tableHeadY, "Qty")
	p.Text(colUnitX, tableHeadY, "Unit")
	g.textRight(p, colRateRight, tableHeadY, "Rate")
	g.textRight(p, colAmountRight, tableHeadY, "Amount")
	p.SetLineWidth(0.5)
	p.Line(leftMargin, tableHeadY+8, rightEdge, tableHeadY+8)
}

// drawItemRow paints one 25pt item row with its 1-based index. y is the
// text baseline of the row.
func (g *Generator) drawItemRow(p *gofpdf.Fpdf, y float64, index int, item entity.DocumentItem) {
	p.SetFont("Helvetica", "", 9)
	p.Text(colIndexX, y, strconv.Itoa(index))
	p.Text(colNameX, y, item.Name)
	g.textRight(p, colQtyRight, y, item.Quantity.String())
	p.Text(colUnitX, y, item.Unit)
	g.textRight(p, colRateRight, y, item.Rate.StringFixed(2))
	g.textRight(p, colAmountRight, y, item.Amount.StringFixed(2))
}

// drawTotals paints the totals block starting at y and returns the Y below
// it. Drawn in the reserved bottom band of the final page, so no further
// pagination check applies.
func (g *Generator) drawTotals(p *gofpdf.Fpdf, y float64, doc *entity.BillingDocument) float64 {
	p.SetLineWidth(0.5)
	p.Line(totalsLabelX, y, rightEdge, y)
	y += 16

	p.SetFont("Helvetica", "", 9)
	p.Text(totalsLabelX, y, "Sub Total")
	g.textRight(p, totalsValueRight, y, doc.SubTotal.StringFixed(2))
	y += 16

	if doc.DiscountAmount.IsPositive() {
		label := "Discount"
		if doc.DiscountType == entity.DiscountTypePercent {
			label = "Discount (" + doc.Discount.String() + "%)"
		}
		p.Text(totalsLabelX, y, label)
		g.textRight(p, totalsValueRight, y, "-"+doc.DiscountAmount.StringFixed(2))
		y += 16
	}

	if !doc.Adjustment.IsZero() {
		p.Text(totalsLabelX, y, "Adjustment")
		g.textRight(p, totalsValueRight, y, doc.Adjustment.StringFixed(2))
		y += 16
	}

	// Boxed grand total.
	p.Rect(totalsLabelX-6, y-12, rightEdge-totalsLabelX+6, 20, "D")
	p.SetFont("Helvetica", "B", 10)
	p.Text(totalsLabelX, y, "Total")
	g.textRight(p, totalsValueRight, y, doc.GrandTotal.StringFixed(2))
	y += 24

	p.SetFont("Helvetica", "I", 9)
	p.Text(leftMargin, y, "In Words: "+numwords.AmountInWords(doc.GrandTotal))
	return y + 20
}

// drawFreeText paints the optional notes and terms beneath the totals. The
// start is capped at freeTextMaxY so the section never runs into the
// generation footer when the totals block ends deep in the reserved band.
func (g *Generator) drawFreeText(p *gofpdf.Fpdf, y float64, doc *entity.BillingDocument) {
	y = freeTextStart(y)
	if doc.Notes != "" {
		p.SetFont("Helvetica", "B", 9)
		p.Text(leftMargin, y, "Notes")
		p.SetFont("Helvetica", "", 9)
		p.Text(leftMargin, y+13, doc.Notes)
		y += 32
	}
	if doc.Terms != "" {
		p.SetFont("Helvetica", "B", 9)
		p.Text(leftMargin, y, "Terms & Conditions")
		p.SetFont("Helvetica", "", 9)
		p.Text(leftMargin, y+13, doc.Terms)
	}
}

// drawSignature paints the blank signature underline and its label at the
// fixed bottom-right anchor.
func (g *Generator) drawSignature(p *gofpdf.Fpdf) {
	p.SetLineWidth(0.5)
	p.Line(400, signatureY, rightEdge, signatureY)
	p.SetFont("Helvetica", "", 9)
	p.Text(418, signatureY+14, "Authorised Signatory")
}

// drawFooter stamps the generation timestamp on the final page.
func (g *Generator) drawFooter(p *gofpdf.Fpdf) {
	p.SetFont("Helvetica", "", 8)
	s := "Generated on " + g.now().Format("02 Jan 2006 15:04")
	p.Text((PageWidth-p.GetStringWidth(s))/2, footerY, s)
}

func (g *Generator) textRight(p *gofpdf.Fpdf, right, y float64, s string) {
	p.Text(right-p.GetStringWidth(s), y, s)
}
