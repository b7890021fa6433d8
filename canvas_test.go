package main

import (
	"bytes"
	"errors"
	"testing"
)

func newTestCanvas() (*Canvas, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCanvas(&buf, NewTracer(DefaultCharSet())), &buf
}

func press(x, y int) MouseEvent   { return MouseEvent{Action: MousePress, Pos: Pt(x, y)} }
func drag(x, y int) MouseEvent    { return MouseEvent{Action: MouseDrag, Pos: Pt(x, y)} }
func release(x, y int) MouseEvent { return MouseEvent{Action: MouseRelease, Pos: Pt(x, y)} }

func mustUpdate(t *testing.T, c *Canvas, evs ...MouseEvent) {
	t.Helper()
	for _, ev := range evs {
		if err := c.Update(ev); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCanvasPressMovesCursor(t *testing.T) {
	c, buf := newTestCanvas()
	mustUpdate(t, c, press(5, 7))
	if c.Cursor() != (Point{5, 7}) {
		t.Errorf("cursor = %v, want (5,7)", c.Cursor())
	}
	if buf.Len() != 0 {
		t.Errorf("press wrote %q to the sink", buf.String())
	}
}

func TestCanvasPlotDrag(t *testing.T) {
	c, buf := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(5, 5))

	want := []Cell{
		{Point{3, 5}, '_'},
		{Point{4, 5}, '_'},
		{Point{5, 5}, '_'},
	}
	diff(t, want, c.sketch.Cells())
	if c.Cursor() != (Point{5, 5}) {
		t.Errorf("cursor = %v, want (5,5)", c.Cursor())
	}
	if buf.Len() != 0 {
		t.Errorf("plot drag wrote %q before Draw", buf.String())
	}

	// The next drag continues from where the last one ended.
	mustUpdate(t, c, drag(5, 7))
	want = append(want, Cell{Point{5, 6}, '|'}, Cell{Point{5, 7}, '|'})
	diff(t, want, c.sketch.Cells())

	if c.Strokes() != 0 {
		t.Errorf("strokes = %d before release", c.Strokes())
	}
	mustUpdate(t, c, release(5, 7))
	if c.Strokes() != 1 {
		t.Errorf("strokes = %d after release, want 1", c.Strokes())
	}
	if !c.sketch.IsEmpty() {
		t.Errorf("sketch not cleared by release: %v", c.sketch.Cells())
	}
}

func TestCanvasDragAboveToolbarIgnored(t *testing.T) {
	c, buf := newTestCanvas()
	mustUpdate(t, c, press(4, 5), drag(6, 2))
	if !c.sketch.IsEmpty() {
		t.Errorf("drag above the toolbar boundary traced %v", c.sketch.Cells())
	}
	if c.Cursor() != (Point{4, 5}) {
		t.Errorf("cursor = %v, want (4,5)", c.Cursor())
	}
	if buf.Len() != 0 {
		t.Errorf("ignored drag wrote %q", buf.String())
	}
}

func TestCanvasLineDragAnchored(t *testing.T) {
	c, buf := newTestCanvas()
	c.SetStyle(StyleLine)
	mustUpdate(t, c, press(4, 4), drag(6, 4))

	diff(t, []Cell{{Point{5, 4}, '_'}, {Point{6, 4}, '_'}}, c.sketch.Cells())
	if c.Cursor() != (Point{4, 4}) {
		t.Errorf("cursor = %v, want the anchor (4,4)", c.Cursor())
	}

	// Retracing erases the previous preview before replacing it.
	buf.Reset()
	mustUpdate(t, c, drag(4, 6))
	if got, want := buf.String(), "\x1b[4;5H \x1b[4;6H "; got != want {
		t.Errorf("erase wrote %q, want %q", got, want)
	}
	diff(t, []Cell{{Point{4, 5}, '|'}, {Point{4, 6}, '|'}}, c.sketch.Cells())
	if c.Cursor() != (Point{4, 4}) {
		t.Errorf("cursor = %v, want the anchor (4,4)", c.Cursor())
	}

	mustUpdate(t, c, release(4, 6))
	if c.Strokes() != 1 {
		t.Errorf("strokes = %d, want 1", c.Strokes())
	}
}

func TestCanvasReleaseCommitsEmptySketch(t *testing.T) {
	c, _ := newTestCanvas()
	mustUpdate(t, c, press(5, 5), release(5, 5))
	if c.Strokes() != 1 {
		t.Errorf("strokes = %d, want 1", c.Strokes())
	}
	if c.base[0].Len() != 0 {
		t.Errorf("committed stroke has %d cells, want 0", c.base[0].Len())
	}

	// Drawing on afterwards must not leak into the committed stroke.
	mustUpdate(t, c, drag(7, 5))
	if c.base[0].Len() != 0 {
		t.Errorf("later drag grew the committed stroke to %d cells", c.base[0].Len())
	}
}

func TestCanvasCommitDetachesSketch(t *testing.T) {
	c, _ := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(4, 5), release(4, 5))
	first := append([]Cell(nil), c.base[0].Cells()...)

	mustUpdate(t, c, press(2, 7), drag(4, 7))
	diff(t, first, c.base[0].Cells())
}

func TestCanvasUndoEmpty(t *testing.T) {
	c, buf := newTestCanvas()
	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("undo on an empty canvas wrote %q", buf.String())
	}
}

func TestCanvasUndoErases(t *testing.T) {
	c, buf := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(4, 5), release(4, 5))
	if err := c.Draw(); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[5;3H \x1b[5;4H "; got != want {
		t.Errorf("undo wrote %q, want %q", got, want)
	}
	if c.Strokes() != 0 {
		t.Errorf("strokes = %d after undo, want 0", c.Strokes())
	}
}

func TestCanvasUndoPopsNewest(t *testing.T) {
	c, _ := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(4, 5), release(4, 5))
	first := append([]Cell(nil), c.base[0].Cells()...)
	mustUpdate(t, c, press(2, 7), drag(4, 7), release(4, 7))

	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	if c.Strokes() != 1 {
		t.Fatalf("strokes = %d, want 1", c.Strokes())
	}
	diff(t, first, c.base[0].Cells())
}

func TestCanvasClearKeepsOverlay(t *testing.T) {
	c, buf := newTestCanvas()
	c.Pin(SegmentFromText(Pt(1, 1), "hi"))
	mustUpdate(t, c, press(2, 5), drag(4, 5), release(4, 5))
	mustUpdate(t, c, press(2, 7), drag(3, 7))

	buf.Reset()
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if c.Strokes() != 0 || !c.sketch.IsEmpty() {
		t.Errorf("clear left %d strokes, sketch %v", c.Strokes(), c.sketch.Cells())
	}
	if c.overlay.Len() != 2 {
		t.Errorf("overlay has %d cells after clear, want 2", c.overlay.Len())
	}
	if got, want := buf.String(), "\x1b[5;3H \x1b[5;4H \x1b[7;3H "; got != want {
		t.Errorf("clear wrote %q, want %q", got, want)
	}
}

func TestCanvasDrawOrder(t *testing.T) {
	c, buf := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(3, 5), release(3, 5))
	c.Pin(SegmentFromText(Pt(3, 5), "X"))

	if err := c.Draw(); err != nil {
		t.Fatal(err)
	}
	// Overlay renders last, so it lands on top of the stroke.
	if got, want := buf.String(), "\x1b[5;3H_\x1b[5;3HX"; got != want {
		t.Errorf("draw wrote %q, want %q", got, want)
	}
}

func TestCanvasSnapshotRestore(t *testing.T) {
	c, _ := newTestCanvas()
	mustUpdate(t, c, press(2, 5), drag(4, 5), release(4, 5))

	snap := c.Snapshot()
	snap[0].Add(NewCell(Pt(9, 9), 'x'))
	if c.base[0].Len() != 2 {
		t.Errorf("mutating the snapshot changed the canvas: %v", c.base[0].Cells())
	}

	c2, _ := newTestCanvas()
	mustUpdate(t, c2, press(2, 9), drag(3, 9))
	c2.Restore(c.Snapshot())
	if c2.Strokes() != 1 {
		t.Errorf("strokes = %d after restore, want 1", c2.Strokes())
	}
	if !c2.sketch.IsEmpty() {
		t.Errorf("restore kept an in-progress sketch: %v", c2.sketch.Cells())
	}
	diff(t, c.base[0].Cells(), c2.base[0].Cells())
}

func TestCanvasInitClose(t *testing.T) {
	c, buf := newTestCanvas()
	if err := c.Init(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[2J\x1b[1;1H\x1b[?25l"; got != want {
		t.Errorf("init wrote %q, want %q", got, want)
	}

	buf.Reset()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[2J\x1b[1;1H\x1b[?25h"; got != want {
		t.Errorf("close wrote %q, want %q", got, want)
	}

	buf.Reset()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("second close wrote %q", buf.String())
	}
}

func TestCanvasCloseSinkFailure(t *testing.T) {
	c := NewCanvas(failWriter{err: errors.New("sink broken")}, NewTracer(DefaultCharSet()))
	if err := c.Close(); err == nil {
		t.Error("close on a broken sink reported no error")
	}
	if err := c.Close(); err != nil {
		t.Errorf("second close = %v, want nil", err)
	}
}

func TestStyleFromKey(t *testing.T) {
	if StyleFromKey('2') != StyleLine {
		t.Error("'2' did not select the line style")
	}
	if StyleFromKey('1') != StylePlot || StyleFromKey('x') != StylePlot {
		t.Error("non-'2' keys did not fall back to the plot style")
	}
	if StylePlot.String() != "plot" || StyleLine.String() != "line" {
		t.Errorf("style names = %q, %q", StylePlot.String(), StyleLine.String())
	}
}
