// Package tui is the interactive two-pane view. It forwards key presses to
// the board and applies the returned patches to its bubbles lists, so list
// rows always mirror pool order.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/logger"
	"github.com/idilsaglam/cards/internal/model"
	"github.com/idilsaglam/cards/internal/orderedlist"
)

type pane int

const (
	paneActive pane = iota
	paneRemoved
)

// Model implements tea.Model over a board.
type Model struct {
	board   *board.Board
	active  list.Model
	removed list.Model
	keys    keyMap
	help    help.Model

	focus        pane
	focusActive  *bool
	focusRemoved *bool
	drag         *drag

	// Inline add
	adding bool
	ti     textinput.Model

	status  string
	isError bool
	changed bool

	width, height int
}

// New builds the view for b. The board stays owned by the caller; the view
// mutates it only through board operations.
func New(b *board.Board) Model {
	fa, fr := true, false
	d := &drag{}

	active := newList("Active", b.Active, cardDelegate{pool: b.Active, drag: d, focused: &fa})
	removed := newList("Removed", b.Removed, cardDelegate{pool: b.Removed, removed: true, focused: &fr})

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New card title..."
	ti.CharLimit = 200

	m := Model{
		board:        b,
		active:       active,
		removed:      removed,
		keys:         defaultKeyMap(),
		help:         help.New(),
		focusActive:  &fa,
		focusRemoved: &fr,
		drag:         d,
		ti:           ti,
	}
	m.resize(80, 24)
	m.showActions()
	return m
}

func newList(title string, pool *orderedlist.Model[model.Card], d cardDelegate) list.Model {
	l := list.New(toItems(pool.Items()), d, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = helpStyle
	// list indices must stay equal to pool indices
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// Run starts the program and reports whether the board changed.
func Run(b *board.Board) (bool, error) {
	p := tea.NewProgram(New(b), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.changed, nil
}

// Changed reports whether any intent mutated the board.
func (m Model) Changed() bool { return m.changed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if m.drag.active {
		return m.updateDragging(km)
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(km, m.keys.Switch):
		m.setFocus(1 - m.focus)
		return m, nil
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.ti.SetValue("")
		m.ti.Focus()
		return m, textinput.Blink
	}

	if m.focus == paneRemoved {
		if key.Matches(km, m.keys.Restore) {
			return m.restore()
		}
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(km, m.keys.Pick):
		return m.pick()
	case key.Matches(km, m.keys.Previous):
		return m.step(orderedlist.Previous)
	case key.Matches(km, m.keys.Next):
		return m.step(orderedlist.Next)
	case key.Matches(km, m.keys.Delete):
		return m.remove()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == paneRemoved {
		m.removed, cmd = m.removed.Update(msg)
	} else {
		m.active, cmd = m.active.Update(msg)
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.showActions()
	}
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			c, p, err := m.board.Add(m.ti.Value(), "")
			if err != nil {
				m.fail(err)
				return m, nil
			}
			logger.Debug("card added", "id", c.ID, "patch", p)
			cmd := m.active.InsertItem(p.Index, cardItem{card: c})
			m.active.Select(p.Index)
			m.changed = true
			m.stopAdding()
			m.setFocus(paneActive)
			m.info(fmt.Sprintf("added %q", c.Title))
			return m, cmd
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
}

// pick starts a drag on the focused active card.
func (m Model) pick() (tea.Model, tea.Cmd) {
	i := m.active.Index()
	e, err := m.board.Active.EnablementAt(i)
	if err != nil {
		return m, nil
	}
	if !e.CanDrag {
		m.warn(fmt.Sprintf("need at least %d cards to reorder", m.board.Active.MinimumCount()))
		return m, nil
	}
	m.drag.active = true
	m.drag.from = i
	m.info("moving: choose a position and press enter, esc to cancel")
	return m, nil
}

func (m Model) updateDragging(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.drag.active = false
		m.active.Select(m.drag.from)
		m.info("move cancelled")
		return m, nil
	case key.Matches(km, m.keys.Drop):
		from, to := m.drag.from, m.active.Index()
		m.drag.active = false
		p, err := m.board.Move(from, to)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		logger.Debug("card dropped", "patch", p)
		m.applyMove(p)
		return m, nil
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Up), key.Matches(km, m.keys.Down):
		var cmd tea.Cmd
		m.active, cmd = m.active.Update(km)
		return m, cmd
	}
	return m, nil
}

// step is the discrete move, equivalent to a one-position drag.
func (m Model) step(dir orderedlist.Direction) (tea.Model, tea.Cmd) {
	i := m.active.Index()
	p, ok, err := m.board.MoveRelative(i, dir)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	if !ok {
		edge := "last"
		if dir == orderedlist.Previous {
			edge = "first"
		}
		m.warn("already " + edge)
		return m, nil
	}
	logger.Debug("card stepped", "direction", dir, "patch", p)
	m.applyMove(p)
	return m, nil
}

func (m Model) remove() (tea.Model, tea.Cmd) {
	c, p, err := m.board.Remove(m.active.Index())
	if err != nil {
		m.fail(err)
		return m, nil
	}
	logger.Debug("card removed", "id", c.ID, "from", p.Source, "to", p.Destination)
	m.active.RemoveItem(p.Source.Index)
	cmd := m.removed.InsertItem(p.Destination.Index, cardItem{card: c})
	m.clampSelection(&m.active, p.Source.Index)
	m.changed = true
	m.info(fmt.Sprintf("removed %q", c.Title))
	return m, cmd
}

func (m Model) restore() (tea.Model, tea.Cmd) {
	c, p, err := m.board.Restore(m.removed.Index())
	if err != nil {
		m.fail(err)
		return m, nil
	}
	logger.Debug("card restored", "id", c.ID, "from", p.Source, "to", p.Destination)
	m.removed.RemoveItem(p.Source.Index)
	cmd := m.active.InsertItem(p.Destination.Index, cardItem{card: c})
	m.clampSelection(&m.removed, p.Source.Index)
	m.changed = true
	m.info(fmt.Sprintf("restored %q", c.Title))
	return m, cmd
}

// applyMove mirrors a pool move onto the active list: one remove at the
// pre-move index, one insert at the post-move index.
func (m *Model) applyMove(p orderedlist.MovePatch) {
	it := m.active.Items()[p.Remove]
	m.active.RemoveItem(p.Remove)
	m.active.InsertItem(p.Insert, it)
	m.active.Select(p.Insert)
	if !p.Noop() {
		m.changed = true
	}
	m.showActions()
}

func (m *Model) clampSelection(l *list.Model, i int) {
	if n := len(l.Items()); i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	l.Select(i)
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	*m.focusActive = p == paneActive
	*m.focusRemoved = p == paneRemoved
	m.showActions()
}

// showActions lists the discrete actions of the focused card, the same set a
// screen reader would be offered.
func (m *Model) showActions() {
	if m.focus == paneRemoved {
		if len(m.removed.Items()) > 0 {
			m.info("actions: restore")
		} else {
			m.info("no removed cards")
		}
		return
	}
	acts, err := m.board.Active.Actions(m.active.Index())
	if err != nil {
		m.info("no cards")
		return
	}
	if len(acts) == 0 {
		m.info("actions: none")
		return
	}
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = string(a)
	}
	m.info("actions: " + strings.Join(names, ", "))
}

func (m *Model) info(s string) { m.status, m.isError = s, false }
func (m *Model) warn(s string) { m.status, m.isError = s, true }

func (m *Model) fail(err error) {
	switch {
	case errors.Is(err, board.ErrLocked):
		m.warn("not enough cards for this action")
	case errors.Is(err, board.ErrEmptyTitle):
		m.warn("title cannot be empty")
	default:
		m.warn(err.Error())
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	paneW := max(20, w/2-4)
	listH := max(3, h-8)
	if m.adding {
		listH = max(3, listH-3)
	}
	m.active.SetSize(paneW, listH)
	m.removed.SetSize(paneW, listH)
	m.help.Width = w
}

func (m Model) View() string {
	left, right := paneStyle, paneStyle
	if m.focus == paneActive {
		left = focusedPaneStyle
	} else {
		right = focusedPaneStyle
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(m.active.View()),
		right.Render(m.removed.View()),
	)

	header := fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("Cards"),
		successStyle.Render("●"), m.board.Active.Len(),
		pendingStyle.Render("○"), m.board.Removed.Len(),
	)

	status := mutedStyle.Render(m.status)
	if m.isError {
		status = errorStyle.Render(m.status)
	}

	parts := []string{header, body}
	if m.adding {
		parts = append(parts, paneStyle.Render("Add new card\n"+m.ti.View()))
	}
	parts = append(parts, status, m.help.View(m.keys.contextual(m.focus, m.drag.active)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
