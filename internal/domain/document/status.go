// Package document holds the billing document lifecycle: the set of
// statuses a document can be in and the directed transitions between them.
package document

// Document statuses. Persisted and compared as their display strings,
// which is what API clients send and the UI shows.
const (
	StatusDraft         = "Draft"
	StatusSent          = "Sent"
	StatusUnpaid        = "Unpaid"
	StatusPaid          = "Paid"
	StatusOverdue       = "Overdue"
	StatusPartiallyPaid = "Partially Paid"
	StatusCancelled     = "Cancelled"
)

// allowedTransitions defines the valid lifecycle moves. The key is the
// current status, the value the set of statuses it may move to.
// Transitions are directed (Draft→Sent is legal, Sent→Draft is not) and
// Cancelled is terminal.
var allowedTransitions = map[string][]string{
	StatusDraft:         {StatusSent, StatusCancelled},
	StatusSent:          {StatusPaid, StatusUnpaid, StatusOverdue, StatusPartiallyPaid},
	StatusUnpaid:        {StatusPaid, StatusOverdue, StatusPartiallyPaid, StatusSent},
	StatusOverdue:       {StatusPaid, StatusUnpaid, StatusPartiallyPaid},
	StatusPaid:          {StatusUnpaid, StatusPartiallyPaid},
	StatusPartiallyPaid: {StatusPaid, StatusUnpaid},
	StatusCancelled:     {}, // terminal
}

// CanTransition reports whether a document may move from one status to
// another. Total over its inputs: an unknown current status simply has no
// legal transitions.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedNext returns a copy of the statuses reachable from the given one.
// Empty for terminal or unknown statuses.
func AllowedNext(from string) []string {
	next := allowedTransitions[from]
	out := make([]string, len(next))
	copy(out, next)
	return out
}
