package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robobooks/robobooks-api/internal/infrastructure/pdf"
)

// placeAll folds n rows through the cursor and returns where each landed.
func placeAll(n int) []pdf.PageCursor {
	cur := pdf.StartCursor()
	out := make([]pdf.PageCursor, 0, n)
	for i := 0; i < n; i++ {
		placed, _ := cur.Place()
		out = append(out, placed)
		cur = placed.Advance()
	}
	return out
}

// With items starting at y=265 and the break line at 641.89, the first
// page holds rows at y=265, 290, ..., 640, sixteen in total. Continuation
// pages reset to y=50 and hold twenty-four.
func TestPageCursor_FirstPageHoldsSixteenRows(t *testing.T) {
	rows := placeAll(17)
	for i := 0; i < 16; i++ {
		assert.Equalf(t, 1, rows[i].Page, "row %d belongs on page 1", i+1)
	}
	assert.Equal(t, 2, rows[16].Page, "row 17 must open page 2")
	assert.InDelta(t, 50.0, rows[16].Y, 0.001, "page break resets Y to the top margin")
}

func TestPageCursor_FortyItemsFillExactlyTwoPages(t *testing.T) {
	rows := placeAll(40)
	require.Len(t, rows, 40)
	assert.Equal(t, 2, rows[39].Page, "item 40 lands on page 2")

	rows = placeAll(41)
	assert.Equal(t, 3, rows[40].Page, "item 41 spills onto page 3")
}

func TestPageCursor_EveryRowPlacedOnceInOrder(t *testing.T) {
	rows := placeAll(100)
	prev := rows[0]
	for i := 1; i < len(rows); i++ {
		cur := rows[i]
		inOrder := cur.Page > prev.Page || (cur.Page == prev.Page && cur.Y > prev.Y)
		assert.Truef(t, inOrder, "row %d (%+v) must come after row %d (%+v)", i+1, cur, i, prev)
		prev = cur
	}
}

// Page count never decreases as the item count grows.
func TestPageCursor_PageCountMonotone(t *testing.T) {
	prevPages := 0
	for n := 1; n <= 120; n++ {
		rows := placeAll(n)
		pages := rows[n-1].Page
		assert.GreaterOrEqualf(t, pages, prevPages, "page count must be monotone at n=%d", n)
		prevPages = pages
	}
}

func TestPageCursor_RowNeverBelowThreshold(t *testing.T) {
	for _, c := range placeAll(200) {
		assert.LessOrEqual(t, c.Y, pdf.PageHeight-200,
			"no row may start inside the reserved bottom band")
	}
}
