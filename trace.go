package main

import "fmt"

// CharSet maps a single unit step to the glyph drawn for it.
type CharSet struct {
	Stationary rune
	Up         rune
	Down       rune
	Left       rune
	Right      rune
	DiagBack   rune
	DiagFwd    rune
}

// DefaultCharSet draws plain ASCII strokes: pipes for vertical movement,
// underscores for horizontal, slashes for diagonals.
func DefaultCharSet() CharSet {
	return CharSet{
		Stationary: '.',
		Up:         '|',
		Down:       '|',
		Left:       '_',
		Right:      '_',
		DiagBack:   '\\',
		DiagFwd:    '/',
	}
}

// CharSetFromGlyphs builds a CharSet from a seven-rune string in table
// order: stationary, up, down, left, right, diagonal-back, diagonal-forward.
func CharSetFromGlyphs(glyphs string) (CharSet, error) {
	rs := []rune(glyphs)
	if len(rs) != 7 {
		return CharSet{}, fmt.Errorf("need exactly 7 glyphs, got %d", len(rs))
	}
	return CharSet{rs[0], rs[1], rs[2], rs[3], rs[4], rs[5], rs[6]}, nil
}

// Next picks the glyph for a unit step from one point to an adjacent one.
// Steps where both axes move the same way lean back (\), opposite ways lean
// forward (/).
func (cs CharSet) Next(from, to Point) rune {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx == 0 && dy == 0:
		return cs.Stationary
	case dx == 0 && dy < 0:
		return cs.Up
	case dx == 0:
		return cs.Down
	case dy == 0 && dx < 0:
		return cs.Left
	case dy == 0:
		return cs.Right
	case (dx < 0) == (dy < 0):
		return cs.DiagBack
	default:
		return cs.DiagFwd
	}
}

// Connector turns two grid points into the stroke between them.
type Connector interface {
	Connect(from, to Point) Segment
}

// Tracer is the default Connector.
type Tracer struct {
	chars CharSet
}

func NewTracer(chars CharSet) Tracer {
	return Tracer{chars: chars}
}

// Connect walks from from toward to, moving each axis at most one unit per
// iteration, and records a glyph cell at every position visited. The walk
// takes exactly max(|dx|,|dy|) steps; connecting a point to itself yields an
// empty segment.
func (t Tracer) Connect(from, to Point) Segment {
	var seg Segment
	cursor := from
	// Clamp so the walk always terminates even for a hand-built target.
	to = Pt(to.X, to.Y)
	for cursor != to {
		prev := cursor
		if cursor.Y > to.Y {
			cursor.MoveUp()
		} else if cursor.Y < to.Y {
			cursor.MoveDown()
		}
		if cursor.X > to.X {
			cursor.MoveLeft()
		} else if cursor.X < to.X {
			cursor.MoveRight()
		}
		seg.Add(NewCell(cursor, t.chars.Next(prev, cursor)))
	}
	return seg
}
