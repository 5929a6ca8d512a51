package orderedlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(s ...string) *Model[string] {
	return New(s, WithKey(func(v string) string { return v }))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		patch    MovePatch
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}, MovePatch{Remove: 0, Insert: 2}},
		{"last to first", 2, 0, []string{"C", "A", "B"}, MovePatch{Remove: 2, Insert: 0}},
		{"middle down", 1, 2, []string{"A", "C", "B"}, MovePatch{Remove: 1, Insert: 2}},
		{"past end appends", 0, 3, []string{"B", "C", "A"}, MovePatch{Remove: 0, Insert: 2}},
		{"far past end appends", 1, 99, []string{"A", "C", "B"}, MovePatch{Remove: 1, Insert: 2}},
		{"negative clamps to front", 2, -4, []string{"C", "A", "B"}, MovePatch{Remove: 2, Insert: 0}},
		{"same place", 1, 1, []string{"A", "B", "C"}, MovePatch{Remove: 1, Insert: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := letters("A", "B", "C")
			p, err := m.Move(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.patch, p)
			assert.Equal(t, tt.want, m.Items())
		})
	}
}

func TestMoveInvalidSourceLeavesSequence(t *testing.T) {
	m := letters("A", "B")
	for _, from := range []int{-1, 2, 10} {
		_, err := m.Move(from, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	}
	assert.Equal(t, []string{"A", "B"}, m.Items())
}

func TestMoveIsInvertible(t *testing.T) {
	orig := []string{"A", "B", "C", "D", "E"}
	for from := range orig {
		for to := range orig {
			m := letters(orig...)
			p, err := m.Move(from, to)
			require.NoError(t, err)
			_, err = m.Move(p.Insert, p.Remove)
			require.NoError(t, err)
			assert.Equal(t, orig, m.Items(), "move %d -> %d", from, to)
		}
	}
}

func TestDelete(t *testing.T) {
	m := letters("A", "B", "C")
	got, p, err := m.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, "B", got)
	assert.Equal(t, DeletePatch{Index: 1}, p)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"A", "C"}, m.Items())

	_, _, err = m.Delete(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 2, m.Len())
}

func TestDeleteFromEmpty(t *testing.T) {
	m := New[string](nil)
	_, _, err := m.Delete(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
		patch InsertPatch
	}{
		{"front", 0, []string{"X", "A", "B"}, InsertPatch{Index: 0}},
		{"middle", 1, []string{"A", "X", "B"}, InsertPatch{Index: 1}},
		{"at count", 2, []string{"A", "B", "X"}, InsertPatch{Index: 2}},
		{"out of range appends", 7, []string{"A", "B", "X"}, InsertPatch{Index: 2}},
		{"append sentinel", Append, []string{"A", "B", "X"}, InsertPatch{Index: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := letters("A", "B")
			p, err := m.Insert("X", tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.patch, p)
			assert.Equal(t, tt.want, m.Items())
		})
	}
}

func TestInsertDuplicateRejected(t *testing.T) {
	m := letters("A", "B")
	_, err := m.Insert("A", Append)
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, []string{"A", "B"}, m.Items())
}

func TestInsertWithoutKeyAllowsEqualValues(t *testing.T) {
	m := New([]int{1})
	_, err := m.Insert(1, Append)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, m.Items())
	assert.Equal(t, -1, m.IndexOf("1"))
}

func TestMoveRelative(t *testing.T) {
	m := letters("A", "B", "C")

	_, ok, err := m.MoveRelative(0, Previous)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = m.MoveRelative(2, Next)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, m.Items())

	p, ok, err := m.MoveRelative(0, Next)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, MovePatch{Remove: 0, Insert: 1}, p)
	assert.Equal(t, []string{"B", "A", "C"}, m.Items())

	p, ok, err = m.MoveRelative(2, Previous)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, MovePatch{Remove: 2, Insert: 1}, p)
	assert.Equal(t, []string{"B", "C", "A"}, m.Items())

	_, _, err = m.MoveRelative(3, Next)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMoveRelativeMatchesDrag(t *testing.T) {
	a := letters("A", "B", "C", "D")
	b := letters("A", "B", "C", "D")

	_, ok, err := a.MoveRelative(1, Next)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = b.Move(1, 2)
	require.NoError(t, err)

	assert.Equal(t, b.Items(), a.Items())
}

func TestBoundary(t *testing.T) {
	m := letters("A", "B", "C")
	b, err := m.Boundary(0)
	require.NoError(t, err)
	assert.Equal(t, Boundary{IsFirst: true}, b)

	b, err = m.Boundary(2)
	require.NoError(t, err)
	assert.Equal(t, Boundary{IsLast: true}, b)

	single := letters("A")
	b, err = single.Boundary(0)
	require.NoError(t, err)
	assert.Equal(t, Boundary{IsFirst: true, IsLast: true}, b)

	_, err = m.Boundary(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAtAndIndexOf(t *testing.T) {
	m := letters("A", "B")
	v, err := m.At(1)
	require.NoError(t, err)
	assert.Equal(t, "B", v)
	assert.Equal(t, 1, m.IndexOf("B"))
	assert.Equal(t, -1, m.IndexOf("Z"))

	_, err = m.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestItemsReturnsCopy(t *testing.T) {
	m := letters("A", "B")
	got := m.Items()
	got[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, m.Items())
}
