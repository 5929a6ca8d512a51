package orderedlist

// Enablement tells the view which per-row controls are active.
type Enablement struct {
	CanDelete bool
	CanDrag   bool
}

// Boundary marks first/last positions, where relative moves are unavailable.
type Boundary struct {
	IsFirst bool
	IsLast  bool
}

// Action is a discrete, non-pointer operation exposed per row.
type Action string

const (
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
	ActionDelete   Action = "delete"
)

// Enablement computes the controls for every index from the current count.
// With drag enabled a single remaining item is locked; without drag it can
// still be deleted.
func (m *Model[T]) Enablement() []Enablement {
	n := len(m.items)
	e := Enablement{CanDelete: n >= m.minCount}
	if m.allowDrag {
		e.CanDrag = n >= m.minCount
	}
	out := make([]Enablement, n)
	for i := range out {
		out[i] = e
	}
	return out
}

// EnablementAt is Enablement for a single index.
func (m *Model[T]) EnablementAt(i int) (Enablement, error) {
	if err := m.check(i); err != nil {
		return Enablement{}, err
	}
	return m.Enablement()[i], nil
}

// Actions lists the discrete actions available for the row at i. Moves are
// offered only when the row can be dragged and is not at that boundary.
func (m *Model[T]) Actions(i int) ([]Action, error) {
	b, err := m.Boundary(i)
	if err != nil {
		return nil, err
	}
	e := m.Enablement()[i]
	var out []Action
	if e.CanDrag && !b.IsFirst {
		out = append(out, ActionPrevious)
	}
	if e.CanDrag && !b.IsLast {
		out = append(out, ActionNext)
	}
	if e.CanDelete {
		out = append(out, ActionDelete)
	}
	return out, nil
}
