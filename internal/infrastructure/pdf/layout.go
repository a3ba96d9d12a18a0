package pdf

// Fixed A4 geometry in points. Layout coordinates are top-left relative;
// gofpdf shares that convention, so no axis inversion is needed here.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	leftMargin = 50.0
	rightEdge  = PageWidth - 50.0

	// Vertical anchors of the fixed single-column layout.
	contentTopY = 50.0  // cursor reset after a page break
	tableHeadY  = 240.0 // table header row (first page only)
	itemStartY  = 265.0 // first item row

	// RowHeight is the fixed height of one line-item row.
	RowHeight = 25.0

	// maxRowY is the pagination threshold: a row whose cursor sits below
	// this line moves to a new page. The 200pt band underneath is reserved
	// for totals, amount in words, signature and footer.
	maxRowY = PageHeight - 200

	// Fixed bottom anchors on the final page.
	signatureY = 770.0
	footerY    = 812.0

	// freeTextMaxY caps where the notes/terms section may start. When a
	// full first page pushes the totals block deep into the reserved band,
	// the section is pulled up to this line so its last text baseline
	// (start + 45pt with both blocks present) stays above the footer.
	freeTextMaxY = 755.0
)

// Item table column anchors. Rate and amount are right-aligned against
// their column's right edge.
const (
	colIndexX        = leftMargin
	colNameX         = 82.0
	colQtyRight      = 330.0
	colUnitX         = 345.0
	colRateRight     = 470.0
	colAmountRight   = rightEdge
	totalsLabelX     = 330.0
	totalsValueRight = rightEdge
)

// PageCursor is the running layout position: 1-based page index and the
// top-left-relative Y of the next row. It is threaded as a value through
// the item fold, so the layout stays a pure computation over it.
type PageCursor struct {
	Page int
	Y    float64
}

// StartCursor positions the cursor at the first item row of page 1.
func StartCursor() PageCursor {
	return PageCursor{Page: 1, Y: itemStartY}
}

// Place returns the cursor at which the next row must be drawn and whether
// that required starting a new page. A row is never split: if the current
// Y has passed the threshold, the whole row moves to the top of a fresh
// page.
func (c PageCursor) Place() (PageCursor, bool) {
	if c.Y > maxRowY {
		return PageCursor{Page: c.Page + 1, Y: contentTopY}, true
	}
	return c, false
}

// Advance moves the cursor past one drawn row.
func (c PageCursor) Advance() PageCursor {
	return PageCursor{Page: c.Page, Y: c.Y + RowHeight}
}

// freeTextStart clamps the notes/terms start position to freeTextMaxY.
func freeTextStart(y float64) float64 {
	if y > freeTextMaxY {
		return freeTextMaxY
	}
	return y
}
