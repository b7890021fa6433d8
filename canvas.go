package main

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

type Style int

const (
	StylePlot Style = iota
	StyleLine
)

// StyleFromKey maps a selector character to a drawing style: '2' picks
// Line, anything else picks Plot.
func StyleFromKey(c rune) Style {
	if c == '2' {
		return StyleLine
	}
	return StylePlot
}

func (s Style) String() string {
	if s == StyleLine {
		return "line"
	}
	return "plot"
}

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
)

// MouseEvent is the decoded form the canvas consumes; translation from the
// terminal mouse protocol happens upstream.
type MouseEvent struct {
	Action MouseAction
	Pos    Point
}

// Canvas owns the committed stroke history, the in-progress sketch, a
// pinned overlay, and the sink everything is rendered to. All methods run
// on the event-loop goroutine; the canvas is not safe for concurrent use.
type Canvas struct {
	w       *bufio.Writer
	out     *termenv.Output
	brush   Connector
	base    []Segment
	sketch  Segment
	overlay Segment
	style   Style
	cursor  Point
	closed  bool
}

func NewCanvas(w io.Writer, brush Connector) *Canvas {
	bw := bufio.NewWriter(w)
	return &Canvas{
		w:      bw,
		out:    termenv.NewOutput(bw),
		brush:  brush,
		cursor: Origin(),
	}
}

// Init clears the screen and hides the terminal cursor. Pair with Close on
// every exit path.
func (c *Canvas) Init() error {
	c.out.ClearScreen()
	c.out.HideCursor()
	return c.w.Flush()
}

// Close restores the terminal: clear, cursor homed and visible again.
// Calling it again is a no-op.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.out.ClearScreen()
	c.out.ShowCursor()
	return c.w.Flush()
}

// Pin replaces the overlay segment wholesale. Nothing is rendered until the
// next Draw.
func (c *Canvas) Pin(overlay Segment) {
	c.overlay = overlay
}

// SetStyle switches how drag events are interpreted; existing strokes are
// untouched.
func (c *Canvas) SetStyle(s Style) {
	c.style = s
}

func (c *Canvas) Style() Style {
	return c.style
}

func (c *Canvas) Cursor() Point {
	return c.cursor
}

// Strokes reports how many committed strokes the canvas holds.
func (c *Canvas) Strokes() int {
	return len(c.base)
}

// Update dispatches one mouse event.
//
// A press only repositions the cursor. Drags inside the reserved toolbar
// rows are dropped entirely. In Plot style every drag appends a trace from
// the last cursor position and the cursor follows the pointer; in Line
// style each drag erases the previous preview and retraces from the press
// anchor, which never moves. A release commits the sketch.
func (c *Canvas) Update(ev MouseEvent) error {
	switch ev.Action {
	case MousePress:
		c.cursor = ev.Pos
	case MouseDrag:
		if ev.Pos.Y < toolbarBoundary {
			return nil
		}
		switch c.style {
		case StylePlot:
			c.sketch.Concat(c.brush.Connect(c.cursor, ev.Pos))
			c.cursor = ev.Pos
		case StyleLine:
			if err := c.erase(&c.sketch); err != nil {
				return err
			}
			c.sketch = c.brush.Connect(c.cursor, ev.Pos)
		}
	case MouseRelease:
		c.base = append(c.base, c.sketch)
		c.sketch = Segment{}
	}
	return nil
}

// erase blanks e on the sink and flushes right away, so stale glyphs never
// outlive the event that invalidated them.
func (c *Canvas) erase(e Eraser) error {
	if err := e.Erase(c.w); err != nil {
		return err
	}
	return c.w.Flush()
}

// Draw repaints everything the canvas holds: committed strokes in commit
// order, then the sketch, then the overlay, so the overlay lands on top
// wherever they collide. One flush at the end.
func (c *Canvas) Draw() error {
	for i := range c.base {
		if err := c.base[i].Render(c.w); err != nil {
			return err
		}
	}
	if err := c.sketch.Render(c.w); err != nil {
		return err
	}
	if err := c.overlay.Render(c.w); err != nil {
		return err
	}
	return c.w.Flush()
}
