package main

import tea "github.com/charmbracelet/bubbletea"

// translateMouse converts a bubbletea mouse message (0-based) into the
// 1-based event the canvas consumes. Under cell-motion tracking, motion
// only arrives while a button is held, so motion means drag. Wheel events
// come through as presses and reposition the cursor like any other press.
func translateMouse(msg tea.MouseMsg) (MouseEvent, bool) {
	pos := Pt(msg.X+1, msg.Y+1)
	switch msg.Action {
	case tea.MouseActionPress:
		return MouseEvent{Action: MousePress, Pos: pos}, true
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonNone {
			return MouseEvent{}, false
		}
		return MouseEvent{Action: MouseDrag, Pos: pos}, true
	case tea.MouseActionRelease:
		return MouseEvent{Action: MouseRelease, Pos: pos}, true
	}
	return MouseEvent{}, false
}
