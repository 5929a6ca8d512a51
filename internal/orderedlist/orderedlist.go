// Package orderedlist holds the ordered item sequence behind a reorderable
// list view. Every mutation returns a patch the view applies to its rows.
package orderedlist

import (
	"errors"
	"fmt"
)

// Append can be passed to Insert to add the item at the end.
const Append = -1

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDuplicateItem   = errors.New("item already in list")
)

// Direction of a discrete move.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// Model is an ordered list of items. It is not safe for concurrent use;
// one owner mutates it from a single event loop.
type Model[T any] struct {
	items     []T
	allowDrag bool
	minCount  int
	key       func(T) string
}

// Option configures a Model.
type Option[T any] func(*Model[T])

// WithDragReorder enables drag reordering. Drag needs at least two items to
// mean anything, so controls lock below that.
func WithDragReorder[T any](allow bool) Option[T] {
	return func(m *Model[T]) { m.allowDrag = allow }
}

// WithKey sets the identity used to reject duplicates.
func WithKey[T any](key func(T) string) Option[T] {
	return func(m *Model[T]) { m.key = key }
}

// New builds a model over a copy of items.
func New[T any](items []T, opts ...Option[T]) *Model[T] {
	m := &Model[T]{items: append([]T(nil), items...)}
	for _, o := range opts {
		o(m)
	}
	m.minCount = 1
	if m.allowDrag {
		m.minCount = 2
	}
	return m
}

func (m *Model[T]) Len() int { return len(m.items) }

// AllowsDragReorder reports whether the model was built with drag enabled.
func (m *Model[T]) AllowsDragReorder() bool { return m.allowDrag }

// MinimumCount is the item count below which delete and drag lock.
func (m *Model[T]) MinimumCount() int { return m.minCount }

// Items returns a copy of the current order.
func (m *Model[T]) Items() []T { return append([]T(nil), m.items...) }

func (m *Model[T]) At(i int) (T, error) {
	if err := m.check(i); err != nil {
		var zero T
		return zero, err
	}
	return m.items[i], nil
}

// IndexOf returns the position of the item with the given identity, or -1.
// It always returns -1 when the model has no key function.
func (m *Model[T]) IndexOf(id string) int {
	if m.key == nil {
		return -1
	}
	for i, it := range m.items {
		if m.key(it) == id {
			return i
		}
	}
	return -1
}

// Move removes the item at from and re-inserts it at to. The destination is
// clamped to the shortened sequence, so anything at or past the end appends.
func (m *Model[T]) Move(from, to int) (MovePatch, error) {
	if err := m.check(from); err != nil {
		return MovePatch{}, err
	}
	it := m.items[from]
	m.items = append(m.items[:from], m.items[from+1:]...)
	dst := clamp(to, len(m.items))
	m.items = insertAt(m.items, dst, it)
	return MovePatch{Remove: from, Insert: dst}, nil
}

// MoveRelative moves one step toward dir. ok is false when the item already
// sits at that boundary; nothing changes in that case.
func (m *Model[T]) MoveRelative(at int, dir Direction) (MovePatch, bool, error) {
	b, err := m.Boundary(at)
	if err != nil {
		return MovePatch{}, false, err
	}
	to := at + 1
	if dir == Previous {
		if b.IsFirst {
			return MovePatch{}, false, nil
		}
		to = at - 1
	} else if b.IsLast {
		return MovePatch{}, false, nil
	}
	p, err := m.Move(at, to)
	return p, err == nil, err
}

// Delete removes and returns the item at i.
func (m *Model[T]) Delete(i int) (T, DeletePatch, error) {
	if err := m.check(i); err != nil {
		var zero T
		return zero, DeletePatch{}, err
	}
	it := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	return it, DeletePatch{Index: i}, nil
}

// Insert adds item at index, appending when index is negative or past the
// end. The patch index is valid against the sequence after insertion.
func (m *Model[T]) Insert(item T, index int) (InsertPatch, error) {
	if err := m.checkUnique(item); err != nil {
		return InsertPatch{}, err
	}
	if index < 0 || index > len(m.items) {
		index = len(m.items)
	}
	m.items = insertAt(m.items, index, item)
	return InsertPatch{Index: index}, nil
}

// Boundary reports whether i is the first and/or last position.
func (m *Model[T]) Boundary(i int) (Boundary, error) {
	if err := m.check(i); err != nil {
		return Boundary{}, err
	}
	return Boundary{IsFirst: i == 0, IsLast: i == len(m.items)-1}, nil
}

func (m *Model[T]) check(i int) error {
	if i < 0 || i >= len(m.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(m.items))
	}
	return nil
}

func (m *Model[T]) checkUnique(item T) error {
	if m.key == nil {
		return nil
	}
	if id := m.key(item); m.IndexOf(id) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, id)
	}
	return nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func insertAt[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
