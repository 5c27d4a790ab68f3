// Package workflow implements the table-driven linear state machine shared by
// the operational record types (orders, receivings, shipments, returns,
// transfers, tagging tasks). The engine is purely computational: it reads a
// snapshot of a record's state and reports the next legal transition. Applying
// the transition is the caller's job; if persistence fails the record simply
// stays where it was.
package workflow

// Edge is a single allowed transition between two states. Label names the
// action a user would click to take it ("Confirm", "Ship", ...).
type Edge[S comparable] struct {
	From  S      `json:"from"`
	To    S      `json:"to"`
	Label string `json:"label"`
}

// Table is the ordered set of allowed transitions for one workflow.
//
// The engine assumes a linear chain: at most one edge per From state. The
// type does not enforce this; if a table defines two edges with the same
// From, Next returns the first match. Keeping the chain linear is the
// responsibility of table construction.
type Table[S comparable] []Edge[S]

// Next returns the single legal transition out of current. The second return
// is false when current has no outgoing edge, which declares it terminal for
// this table.
func (t Table[S]) Next(current S) (Edge[S], bool) {
	for _, e := range t {
		if e.From == current {
			return e, true
		}
	}
	var zero Edge[S]
	return zero, false
}

// IsTerminal reports whether current has no outgoing edge. A state the table
// has never heard of is indistinguishable from a declared final state here;
// use Knows when that distinction matters.
func (t Table[S]) IsTerminal(current S) bool {
	_, ok := t.Next(current)
	return !ok
}

// CanAdvance reports whether a record at current may take its next
// transition: the state must not be terminal and the record must satisfy its
// eligibility precondition, typically "has an assignee".
func (t Table[S]) CanAdvance(current S, eligible bool) bool {
	return eligible && !t.IsTerminal(current)
}

// Knows reports whether state appears anywhere in the table, as a source or
// destination of any edge. Diagnostic only: the engine itself treats unknown
// states as terminal.
func (t Table[S]) Knows(state S) bool {
	for _, e := range t {
		if e.From == state || e.To == state {
			return true
		}
	}
	return false
}
