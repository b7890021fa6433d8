package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if debugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "scrawl")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	canvas := NewCanvas(os.Stdout, NewTracer(config.Glyphs))
	out := termenv.NewOutput(os.Stdout)

	// Restore the terminal on every exit path, including panics unwinding
	// through Run. This must happen before main calls log.Fatal, which
	// skips deferred calls.
	defer func() {
		out.DisableMouseExtendedMode()
		out.DisableMouseCellMotion()
		if err := canvas.Close(); err != nil && debugEnabled() {
			log.Printf("close: %v", err)
		}
	}()

	p := tea.NewProgram(
		newModel(config, canvas, out, os.Stdout),
		tea.WithoutRenderer(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run program: %v", err)
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

type model struct {
	config *Config
	canvas *Canvas
	out    *termenv.Output
	sink   io.Writer
	width  int
	state  uiState
	helpOn bool
	help   Segment
	status status
	err    error
}

func newModel(config *Config, canvas *Canvas, out *termenv.Output, sink io.Writer) model {
	return model{
		config: config,
		canvas: canvas,
		out:    out,
		sink:   sink,
		width:  80,
	}
}

// Init schedules terminal setup. The returned command runs off the event
// loop, so it only delivers a message; the actual setup happens in Update.
func (m model) Init() tea.Cmd {
	return setup
}

func setup() tea.Msg {
	return setupMsg{}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setupMsg:
		cmd := m.handleSetup()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		cmd := m.redraw()
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleSetup() tea.Cmd {
	m.out.EnableMouseCellMotion()
	m.out.EnableMouseExtendedMode()
	if err := m.canvas.Init(); err != nil {
		return m.fatal(err)
	}
	m.canvas.Pin(buildToolbar(m.canvas.Style()))
	m.status = status{text: "hold the left mouse button to draw, ? for help"}
	return m.redraw()
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := translateMouse(msg)
	if !ok {
		return nil
	}

	// A click on the toolbar row picks a style instead of drawing.
	if ev.Action == MousePress && ev.Pos.Y == toolbarRow {
		if key, ok := toolbarHit(ev.Pos.X); ok {
			return m.setStyle(StyleFromKey(key))
		}
	}

	if err := m.canvas.Update(ev); err != nil {
		return m.fatal(err)
	}
	if ev.Action == MouseRelease {
		m.status = status{text: fmt.Sprintf("%d strokes", m.canvas.Strokes())}
	}
	return m.redraw()
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state == uiConfirmClear {
		m.state = uiNormal
		switch msg.String() {
		case "y", "Y":
			return m.clearCanvas()
		}
		m.status = status{text: "clear cancelled"}
		return m.redraw()
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "1", "2":
		return m.setStyle(StyleFromKey(rune(msg.String()[0])))
	case "u":
		if err := m.canvas.Undo(); err != nil {
			return m.fatal(err)
		}
		m.status = status{text: fmt.Sprintf("%d strokes", m.canvas.Strokes())}
		return m.redraw()
	case "c":
		if m.config.ConfirmClear && m.canvas.Strokes() > 0 {
			m.state = uiConfirmClear
			m.status = status{text: "clear the canvas? y/n"}
			return m.redraw()
		}
		return m.clearCanvas()
	case "s":
		return m.save()
	case "o":
		return m.openLatest()
	case "e":
		return m.exportTXT()
	case "p":
		return m.exportPNG()
	case "y":
		return m.yank()
	case "?":
		return m.toggleHelp()
	}
	return nil
}

func (m *model) setStyle(s Style) tea.Cmd {
	m.closeHelp()
	m.canvas.SetStyle(s)
	m.canvas.Pin(buildToolbar(s))
	m.status = status{text: s.String() + " style"}
	return m.redraw()
}

func (m *model) toggleHelp() tea.Cmd {
	if m.helpOn {
		m.closeHelp()
	} else {
		m.helpOn = true
		m.help = buildHelp()
		m.canvas.Pin(m.help)
	}
	return m.redraw()
}

func (m *model) closeHelp() {
	if !m.helpOn {
		return
	}
	m.helpOn = false
	// Swapping the overlay does not erase glyphs already on screen, so wipe
	// the help text before the toolbar goes back up.
	if err := m.help.Erase(m.sink); err != nil && debugEnabled() {
		log.Printf("help erase: %v", err)
	}
	m.help = Segment{}
	m.canvas.Pin(buildToolbar(m.canvas.Style()))
}

func (m *model) clearCanvas() tea.Cmd {
	if err := m.canvas.Clear(); err != nil {
		return m.fatal(err)
	}
	m.status = status{text: "canvas cleared"}
	return m.redraw()
}

func (m *model) save() tea.Cmd {
	if m.canvas.Strokes() == 0 {
		m.status = status{text: "nothing to save", isErr: true}
		return m.redraw()
	}
	path := m.config.GetSavePath(sketchFilename(time.Now()))
	if err := saveSketch(path, m.canvas.Snapshot()); err != nil {
		m.status = status{text: fmt.Sprintf("save failed: %v", err), isErr: true}
		return m.redraw()
	}
	m.status = status{text: "saved " + path}
	return m.redraw()
}

func (m *model) openLatest() tea.Cmd {
	path, err := latestSketchFile(m.config.SaveDirectory)
	if err != nil {
		m.status = status{text: fmt.Sprintf("open failed: %v", err), isErr: true}
		return m.redraw()
	}
	segs, err := loadSketch(path)
	if err != nil {
		m.status = status{text: fmt.Sprintf("open failed: %v", err), isErr: true}
		return m.redraw()
	}
	if err := m.canvas.Clear(); err != nil {
		return m.fatal(err)
	}
	m.canvas.Restore(segs)
	m.status = status{text: "opened " + path}
	return m.redraw()
}

func (m *model) exportTXT() tea.Cmd {
	path := m.config.GetSavePath(exportFilename(time.Now(), ".txt"))
	if err := exportVisualTXT(path, m.canvas.Snapshot()); err != nil {
		m.status = status{text: fmt.Sprintf("export failed: %v", err), isErr: true}
		return m.redraw()
	}
	m.status = status{text: "exported " + path}
	return m.redraw()
}

func (m *model) exportPNG() tea.Cmd {
	path := m.config.GetSavePath(exportFilename(time.Now(), ".png"))
	if err := exportToPNG(path, m.canvas.Snapshot()); err != nil {
		m.status = status{text: fmt.Sprintf("export failed: %v", err), isErr: true}
		return m.redraw()
	}
	m.status = status{text: "exported " + path}
	return m.redraw()
}

func (m *model) yank() tea.Cmd {
	if err := yankToClipboard(m.canvas.Snapshot()); err != nil {
		m.status = status{text: fmt.Sprintf("yank failed: %v", err), isErr: true}
		return m.redraw()
	}
	m.status = status{text: "copied to clipboard"}
	return m.redraw()
}

// redraw repaints the canvas and then the status line, so status text wins
// wherever a stroke crosses it.
func (m *model) redraw() tea.Cmd {
	if err := m.canvas.Draw(); err != nil {
		return m.fatal(err)
	}
	if err := writeStatus(m.sink, m.width, m.status.text, m.status.isErr); err != nil {
		return m.fatal(err)
	}
	return nil
}

func (m *model) fatal(err error) tea.Cmd {
	if debugEnabled() {
		log.Printf("fatal: %v", err)
	}
	m.err = err
	return tea.Quit
}

// View is unused: the canvas writes straight to the terminal, so the
// program runs without bubbletea's renderer.
func (m model) View() string {
	return ""
}
