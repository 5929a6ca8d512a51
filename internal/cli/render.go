package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/model"
	"github.com/idilsaglam/cards/internal/orderedlist"
	"github.com/idilsaglam/cards/internal/ui"
)

// -------------- rendering helpers --------------

func listLines(b *board.Board, all bool) []string {
	t := ui.Current()
	na, nr := b.Active.Len(), b.Removed.Len()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Cards"),
		ui.C(t.Success, t.SymActive), na,
		ui.C(t.Pending, t.SymRemoved), nr,
		ui.C(t.Accent, "Total"), na+nr,
	)

	lines := []string{
		header,
		ui.C(t.Muted, ui.ProgressBar(na, na+nr, 28)),
		"",
	}
	if all {
		lines = append(lines, ui.C(t.Accent, "Active"))
	}
	lines = append(lines, activeLines(b.Active)...)
	if all {
		lines = append(lines, "", ui.C(t.Accent, "Removed"))
		lines = append(lines, removedLines(b.Removed)...)
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: reorder with `cards mv 1 3`, or `cards up 2`"))
	return lines
}

func activeLines(m *orderedlist.Model[model.Card]) []string {
	t := ui.Current()
	if m.Len() == 0 {
		return []string{ui.C(t.Muted, "no cards")}
	}
	en := m.Enablement()
	out := make([]string, 0, m.Len())
	for i, c := range m.Items() {
		handle := ui.C(t.Muted, t.Locked)
		if en[i].CanDrag {
			handle = ui.C(t.Accent, t.Handle)
		}
		acts, _ := m.Actions(i)
		out = append(out, fmt.Sprintf("%s %s %s%s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)), handle, cardLabel(c), actionsHint(acts)))
	}
	return out
}

func removedLines(m *orderedlist.Model[model.Card]) []string {
	t := ui.Current()
	if m.Len() == 0 {
		return []string{ui.C(t.Muted, "(none)")}
	}
	out := make([]string, 0, m.Len())
	for i, c := range m.Items() {
		out = append(out, fmt.Sprintf("%s %s %s%s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)), ui.C(t.Pending, t.Removed), cardLabel(c),
			ui.C(t.Muted, "  (restore)")))
	}
	return out
}

func cardLabel(c model.Card) string {
	title := c.Title
	if len([]rune(title)) > 60 {
		title = string([]rune(title)[:57]) + "..."
	}
	if c.Badge == "" {
		return title
	}
	return fmt.Sprintf("%s %s", ui.C(ui.Current().Muted, "["+c.Badge+"]"), title)
}

func actionsHint(acts []orderedlist.Action) string {
	if len(acts) == 0 {
		return ""
	}
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = string(a)
	}
	return ui.C(ui.Current().Muted, "  ("+strings.Join(names, ", ")+")")
}
