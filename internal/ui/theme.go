package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	Handle, Locked, Removed                       string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymActive, SymRemoved                         string
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		disableColor = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Handle: "⣿", Locked: "◌", Removed: "◻",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymActive: "●", SymRemoved: "○",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Handle: "=", Locked: ".", Removed: "-",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymActive: "*", SymRemoved: "o",
		}
	default:
		disableColor = false
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		Handle: "≡", Locked: "·", Removed: "☐",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymActive: "●", SymRemoved: "○",
	}
}

// Expose what renderers need
func Current() Theme { return current }
