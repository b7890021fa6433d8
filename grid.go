package main

import (
	"fmt"
	"io"
	"strings"
)

// Point is a 1-indexed terminal grid coordinate; row 1, column 1 is the
// top-left corner, matching the terminal's own addressing.
type Point struct {
	X, Y int
}

// Pt clamps both coordinates to the 1-based grid.
func Pt(x, y int) Point {
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	return Point{x, y}
}

func Origin() Point {
	return Point{1, 1}
}

func (p *Point) MoveTo(x, y int) {
	*p = Pt(x, y)
}

// The unit moves saturate at the grid edge instead of wrapping.
func (p *Point) MoveUp() {
	if p.Y > 1 {
		p.Y--
	}
}

func (p *Point) MoveDown() {
	p.Y++
}

func (p *Point) MoveLeft() {
	if p.X > 1 {
		p.X--
	}
}

func (p *Point) MoveRight() {
	p.X++
}

// Eraser blanks previously rendered output on a sink.
type Eraser interface {
	Erase(w io.Writer) error
}

// Cell is one glyph at one grid position.
type Cell struct {
	Pos     Point
	Content rune
}

func NewCell(pos Point, content rune) Cell {
	return Cell{Pos: pos, Content: content}
}

// Render emits an absolute positioning sequence followed by the glyph.
func (c *Cell) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH%c", c.Pos.Y, c.Pos.X, c.Content)
	return err
}

// Erase blanks the cell and re-renders it, so the glyph disappears from the
// terminal as well as from the cell.
func (c *Cell) Erase(w io.Writer) error {
	c.Content = ' '
	return c.Render(w)
}

// Segment is an ordered run of cells forming one stroke, trace, or overlay.
// Insertion order is meaningful: block serialization and erasing both walk
// it front to back.
type Segment struct {
	cells []Cell
}

// SegmentFromText lays text out left to right starting at start, one cell
// per rune.
func SegmentFromText(start Point, text string) Segment {
	var seg Segment
	pos := start
	for _, r := range text {
		seg.Add(NewCell(pos, r))
		pos.MoveRight()
	}
	return seg
}

func (s *Segment) Add(c Cell) {
	s.cells = append(s.cells, c)
}

func (s *Segment) Clear() {
	s.cells = s.cells[:0]
}

func (s Segment) Len() int {
	return len(s.cells)
}

func (s Segment) IsEmpty() bool {
	return len(s.cells) == 0
}

// Cells exposes the underlying run; callers must not mutate it.
func (s Segment) Cells() []Cell {
	return s.cells
}

// Concat appends other's cells after s's own.
func (s *Segment) Concat(other Segment) {
	s.cells = append(s.cells, other.cells...)
}

func (s Segment) clone() Segment {
	return Segment{cells: append([]Cell(nil), s.cells...)}
}

// Bounds returns the min and max corners across all cells; ok is false for
// an empty segment.
func (s Segment) Bounds() (min, max Point, ok bool) {
	if len(s.cells) == 0 {
		return Point{}, Point{}, false
	}
	min, max = s.cells[0].Pos, s.cells[0].Pos
	for _, c := range s.cells[1:] {
		if c.Pos.X < min.X {
			min.X = c.Pos.X
		}
		if c.Pos.Y < min.Y {
			min.Y = c.Pos.Y
		}
		if c.Pos.X > max.X {
			max.X = c.Pos.X
		}
		if c.Pos.Y > max.Y {
			max.Y = c.Pos.Y
		}
	}
	return min, max, true
}

// Block serializes the segment as a text rectangle spanning its bounding
// box, rows joined by newlines, unoccupied positions blank. When two cells
// share a position the first-inserted one wins.
func (s Segment) Block() string {
	min, max, ok := s.Bounds()
	if !ok {
		return ""
	}
	width := max.X - min.X + 1
	rows := make([][]rune, max.Y-min.Y+1)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}
	seen := make(map[Point]bool, len(s.cells))
	for _, c := range s.cells {
		if seen[c.Pos] {
			continue
		}
		seen[c.Pos] = true
		rows[c.Pos.Y-min.Y][c.Pos.X-min.X] = c.Content
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (s Segment) Render(w io.Writer) error {
	for i := range s.cells {
		if err := s.cells[i].Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Erase blanks every cell on the sink. It must run before Clear, or the
// glyphs stay on screen with nothing left that remembers where they are.
func (s *Segment) Erase(w io.Writer) error {
	for i := range s.cells {
		if err := s.cells[i].Erase(w); err != nil {
			return err
		}
	}
	return nil
}
