package main

// Undo pops the newest committed stroke and blanks it on screen. Undoing
// with an empty history is a no-op, not an error.
func (c *Canvas) Undo() error {
	n := len(c.base)
	if n == 0 {
		return nil
	}
	dropped := c.base[n-1]
	c.base = c.base[:n-1]
	return c.erase(&dropped)
}

// Clear erases every committed stroke and the sketch from the screen, then
// drops them from the canvas. The overlay survives.
func (c *Canvas) Clear() error {
	for i := range c.base {
		if err := c.base[i].Erase(c.w); err != nil {
			return err
		}
	}
	if err := c.sketch.Erase(c.w); err != nil {
		return err
	}
	c.base = c.base[:0]
	c.sketch = Segment{}
	return c.w.Flush()
}

// Snapshot hands out a deep copy of the committed strokes for persistence;
// the canvas keeps its own.
func (c *Canvas) Snapshot() []Segment {
	out := make([]Segment, len(c.base))
	for i := range c.base {
		out[i] = c.base[i].clone()
	}
	return out
}

// Restore replaces the committed history with a deep copy of segs and drops
// any sketch in progress. Nothing is rendered; the caller clears and draws
// around it.
func (c *Canvas) Restore(segs []Segment) {
	c.base = make([]Segment, len(segs))
	for i := range segs {
		c.base[i] = segs[i].clone()
	}
	c.sketch = Segment{}
}
