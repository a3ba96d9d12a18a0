package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robobooks/robobooks-api/internal/domain/document"
)

// legalPairs is the authoritative transition table, flattened. Any pair
// not in this list must be rejected.
var legalPairs = [][2]string{
	{document.StatusDraft, document.StatusSent},
	{document.StatusDraft, document.StatusCancelled},
	{document.StatusSent, document.StatusPaid},
	{document.StatusSent, document.StatusUnpaid},
	{document.StatusSent, document.StatusOverdue},
	{document.StatusSent, document.StatusPartiallyPaid},
	{document.StatusUnpaid, document.StatusPaid},
	{document.StatusUnpaid, document.StatusOverdue},
	{document.StatusUnpaid, document.StatusPartiallyPaid},
	{document.StatusUnpaid, document.StatusSent},
	{document.StatusOverdue, document.StatusPaid},
	{document.StatusOverdue, document.StatusUnpaid},
	{document.StatusOverdue, document.StatusPartiallyPaid},
	{document.StatusPaid, document.StatusUnpaid},
	{document.StatusPaid, document.StatusPartiallyPaid},
	{document.StatusPartiallyPaid, document.StatusPaid},
	{document.StatusPartiallyPaid, document.StatusUnpaid},
}

var allStatuses = []string{
	document.StatusDraft,
	document.StatusSent,
	document.StatusUnpaid,
	document.StatusPaid,
	document.StatusOverdue,
	document.StatusPartiallyPaid,
	document.StatusCancelled,
}

func TestCanTransition_FullGrid(t *testing.T) {
	legal := make(map[[2]string]bool, len(legalPairs))
	for _, p := range legalPairs {
		legal[p] = true
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := legal[[2]string{from, to}]
			assert.Equalf(t, want, document.CanTransition(from, to),
				"transition %q → %q", from, to)
		}
	}
}

func TestCanTransition_DirectedNotSymmetric(t *testing.T) {
	assert.True(t, document.CanTransition(document.StatusDraft, document.StatusSent))
	assert.False(t, document.CanTransition(document.StatusSent, document.StatusDraft),
		"a sent document cannot go back to draft")
}

func TestCanTransition_CancelledIsTerminal(t *testing.T) {
	for _, to := range allStatuses {
		assert.Falsef(t, document.CanTransition(document.StatusCancelled, to),
			"Cancelled must have no outgoing transitions (tried %q)", to)
	}
	assert.Empty(t, document.AllowedNext(document.StatusCancelled))
}

func TestCanTransition_UnknownStatuses(t *testing.T) {
	assert.False(t, document.CanTransition("Archived", document.StatusPaid),
		"unknown current status has no legal transitions")
	assert.False(t, document.CanTransition(document.StatusDraft, "Archived"),
		"unknown target status is never legal")
	assert.False(t, document.CanTransition("", ""))
}

func TestAllowedNext_ReturnsCopy(t *testing.T) {
	next := document.AllowedNext(document.StatusDraft)
	assert.ElementsMatch(t, []string{document.StatusSent, document.StatusCancelled}, next)

	// Mutating the returned slice must not corrupt the table.
	next[0] = "Paid"
	assert.False(t, document.CanTransition(document.StatusDraft, document.StatusPaid))
}
