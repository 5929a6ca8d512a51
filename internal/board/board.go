// Package board pairs the active and removed card pools and moves cards
// between them.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/cards/internal/model"
	"github.com/idilsaglam/cards/internal/orderedlist"
)

// ErrLocked is returned when the enablement policy disables the control for
// the requested card (for example deleting the last draggable card).
var ErrLocked = errors.New("control locked")

// ErrEmptyTitle is returned by Add for blank titles.
var ErrEmptyTitle = errors.New("empty title")

// Board owns both pools. Mutate it from one goroutine only.
type Board struct {
	Active  *orderedlist.Model[model.Card]
	Removed *orderedlist.Model[model.Card]
}

// Snapshot is the persisted form of a board.
type Snapshot struct {
	Active  []model.Card `json:"active"`
	Removed []model.Card `json:"removed"`
}

// New builds a board. allowDrag enables drag reordering in the active pool;
// the removed pool never reorders.
func New(s Snapshot, allowDrag bool) *Board {
	seen := make(map[string]bool, len(s.Active)+len(s.Removed))
	return &Board{
		Active: orderedlist.New(dedupe(s.Active, model.PoolActive, seen),
			orderedlist.WithKey(model.Key),
			orderedlist.WithDragReorder[model.Card](allowDrag)),
		Removed: orderedlist.New(dedupe(s.Removed, model.PoolRemoved, seen),
			orderedlist.WithKey(model.Key)),
	}
}

// Snapshot copies the current state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{Active: b.Active.Items(), Removed: b.Removed.Items()}
}

// Add appends a new card to the active pool.
func (b *Board) Add(title, badge string) (model.Card, orderedlist.InsertPatch, error) {
	if strings.TrimSpace(title) == "" {
		return model.Card{}, orderedlist.InsertPatch{}, ErrEmptyTitle
	}
	c := model.NewCard(title, badge)
	p, err := b.Active.Insert(c, orderedlist.Append)
	if err != nil {
		return model.Card{}, orderedlist.InsertPatch{}, err
	}
	return c, p, nil
}

// Remove sends the active card at index to the removed pool.
func (b *Board) Remove(at int) (model.Card, orderedlist.TransferPatch, error) {
	e, err := b.Active.EnablementAt(at)
	if err != nil {
		return model.Card{}, orderedlist.TransferPatch{}, err
	}
	if !e.CanDelete {
		return model.Card{}, orderedlist.TransferPatch{}, fmt.Errorf("remove %d: %w", at, ErrLocked)
	}
	return b.transfer(b.Active, b.Removed, at, model.PoolRemoved)
}

// Restore sends the removed card at index back to the end of the active pool.
func (b *Board) Restore(at int) (model.Card, orderedlist.TransferPatch, error) {
	return b.transfer(b.Removed, b.Active, at, model.PoolActive)
}

// Move is the drag-and-drop completion for the active pool.
func (b *Board) Move(from, to int) (orderedlist.MovePatch, error) {
	if err := b.canDrag(from); err != nil {
		return orderedlist.MovePatch{}, err
	}
	return b.Active.Move(from, to)
}

// MoveRelative is the discrete previous/next action for the active pool.
func (b *Board) MoveRelative(at int, dir orderedlist.Direction) (orderedlist.MovePatch, bool, error) {
	if err := b.canDrag(at); err != nil {
		return orderedlist.MovePatch{}, false, err
	}
	return b.Active.MoveRelative(at, dir)
}

func (b *Board) canDrag(at int) error {
	e, err := b.Active.EnablementAt(at)
	if err != nil {
		return err
	}
	if !e.CanDrag {
		return fmt.Errorf("move %d: %w", at, ErrLocked)
	}
	return nil
}

func (b *Board) transfer(src, dst *orderedlist.Model[model.Card], at int, to model.Pool) (model.Card, orderedlist.TransferPatch, error) {
	p, err := orderedlist.Transfer(src, dst, at, func(c model.Card) model.Card {
		return model.ForPool(c, to)
	})
	if err != nil {
		return model.Card{}, orderedlist.TransferPatch{}, err
	}
	c, err := dst.At(p.Destination.Index)
	if err != nil {
		return model.Card{}, orderedlist.TransferPatch{}, err
	}
	return c, p, nil
}

// dedupe drops ids already seen in either pool (active wins) and normalizes
// pool flags, so a hand-edited data file cannot put a card in two places.
func dedupe(cards []model.Card, p model.Pool, seen map[string]bool) []model.Card {
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, model.ForPool(c, p))
	}
	return out
}
