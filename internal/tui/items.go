package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/cards/internal/model"
	"github.com/idilsaglam/cards/internal/orderedlist"
)

// cardItem adapts a Card to bubbles/list.Item
type cardItem struct {
	card model.Card
}

func (i cardItem) Title() string {
	if i.card.Badge == "" {
		return i.card.Title
	}
	return fmt.Sprintf("[%s] %s", i.card.Badge, i.card.Title)
}

// Implement list.Item interface
func (i cardItem) Description() string { return "" }
func (i cardItem) FilterValue() string { return i.card.Title }

func toItems(cards []model.Card) []list.Item {
	out := make([]list.Item, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardItem{card: c})
	}
	return out
}

// drag is the in-flight pick-up state of the active pane.
type drag struct {
	active bool
	from   int
}

// cardDelegate renders one line per card. It reads enablement straight from
// the pool so the handles always match the current count.
type cardDelegate struct {
	pool    *orderedlist.Model[model.Card]
	drag    *drag
	removed bool
	focused *bool
}

func (d cardDelegate) Height() int                               { return 1 }
func (d cardDelegate) Spacing() int                              { return 0 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	selected := index == m.Index() && *d.focused

	var mark string
	switch {
	case d.removed:
		mark = pendingStyle.Render(symRemoved)
	case d.canDrag(index):
		mark = accentStyle.Render(symHandle)
	default:
		mark = mutedStyle.Render(symLocked)
	}

	text := it.Title()
	switch {
	case d.removed:
		text = removedStyle.Render(text)
	case d.drag != nil && d.drag.active && index == d.drag.from:
		text = heldStyle.Render(text + " (held)")
	}

	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("> ")
		if d.drag != nil && d.drag.active && index != d.drag.from {
			prefix = heldStyle.Render(symDrop + " ")
		}
	}
	fmt.Fprint(w, prefix+mark+" "+text)
}

func (d cardDelegate) canDrag(i int) bool {
	e, err := d.pool.EnablementAt(i)
	return err == nil && e.CanDrag
}
