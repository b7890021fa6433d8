package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

const toolbarGap = 3

type toolbarButton struct {
	key  rune
	name string
}

var toolbarButtons = []toolbarButton{
	{key: '1', name: "plot"},
	{key: '2', name: "line"},
}

// eachToolbarButton walks the toolbar layout, yielding each button with its
// label for the active style and its starting column. The active marker
// replaces a space, so column spans never shift.
func eachToolbarButton(active Style, fn func(b toolbarButton, label string, col int)) {
	col := 1
	for i, b := range toolbarButtons {
		if i > 0 {
			col += toolbarGap
		}
		marker := ' '
		if StyleFromKey(b.key) == active {
			marker = '*'
		}
		label := fmt.Sprintf("[%c]%c%s", b.key, marker, b.name)
		fn(b, label, col)
		col += len(label)
	}
}

// buildToolbar lays the mode buttons out on the toolbar row as a pinnable
// overlay segment.
func buildToolbar(active Style) Segment {
	var seg Segment
	eachToolbarButton(active, func(b toolbarButton, label string, col int) {
		seg.Concat(SegmentFromText(Pt(col, toolbarRow), label))
	})
	return seg
}

// toolbarHit maps a press on the toolbar row to the selector key of the
// button under column x.
func toolbarHit(x int) (rune, bool) {
	var hit rune
	eachToolbarButton(StylePlot, func(b toolbarButton, label string, col int) {
		if x >= col && x < col+len(label) {
			hit = b.key
		}
	})
	if hit == 0 {
		return 0, false
	}
	return hit, true
}

var helpLines = []string{
	"scrawl: hold the left mouse button and drag to draw",
	"",
	"  1  freehand plot style        2  anchored line style",
	"  u  undo last stroke           c  clear all strokes",
	"  s  save sketch                o  open latest sketch",
	"  e  export text                p  export png",
	"  y  yank drawing to clipboard  q  quit",
	"",
	"  ? closes this help",
}

// buildHelp assembles the help overlay below the reserved rows.
func buildHelp() Segment {
	var seg Segment
	for i, line := range helpLines {
		seg.Concat(SegmentFromText(Pt(1, toolbarBoundary+i), line))
	}
	return seg
}

var (
	statusInfoStyle  = lipgloss.NewStyle().Faint(true)
	statusErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// writeStatus paints msg on the status row, truncated to the terminal width
// and padded with blanks so the previous message never shows through.
func writeStatus(w io.Writer, width int, msg string, isErr bool) error {
	if width <= 0 {
		width = 80
	}
	msg = runewidth.Truncate(msg, width, "...")
	line := statusInfoStyle.Render(msg)
	if isErr {
		line = statusErrorStyle.Render(msg)
	}
	if pad := width - ansi.PrintableRuneWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	_, err := fmt.Fprintf(w, "\x1b[%d;1H%s", statusRow, line)
	return err
}
