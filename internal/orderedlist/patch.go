package orderedlist

import "fmt"

// Kind of a patch.
type Kind int

const (
	KindInsert Kind = iota
	KindDelete
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return "move"
	}
}

// Patch is one row update for the view.
type Patch interface {
	Kind() Kind
}

// MovePatch removes the row at Remove (pre-move index) and inserts it at
// Insert (post-move index).
type MovePatch struct {
	Remove int
	Insert int
}

func (MovePatch) Kind() Kind { return KindMove }

// Noop is true when the item ends where it started.
func (p MovePatch) Noop() bool { return p.Remove == p.Insert }

func (p MovePatch) String() string { return fmt.Sprintf("move %d -> %d", p.Remove, p.Insert) }

// DeletePatch removes the row at Index (pre-delete index).
type DeletePatch struct {
	Index int
}

func (DeletePatch) Kind() Kind { return KindDelete }

func (p DeletePatch) String() string { return fmt.Sprintf("delete %d", p.Index) }

// InsertPatch adds a row at Index (post-insert index).
type InsertPatch struct {
	Index int
}

func (InsertPatch) Kind() Kind { return KindInsert }

func (p InsertPatch) String() string { return fmt.Sprintf("insert %d", p.Index) }

// TransferPatch describes one item leaving a source list and arriving in a
// destination list.
type TransferPatch struct {
	Source      DeletePatch
	Destination InsertPatch
}
