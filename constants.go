package main

const (
	toolbarRow = 1
	statusRow  = 2

	// toolbarBoundary is the first row where drawing is allowed; drag
	// events above it are dropped so the toolbar and status rows stay
	// intact.
	toolbarBoundary = 3
)

const (
	sketchExt    = ".scrawl"
	configFile   = ".scrawlrc"
	debugEnvVar  = "SCRAWL_DEBUG"
	debugLogFile = "scrawl-debug.log"
)

// Pixel metrics for PNG export, one terminal cell per glyph.
const (
	pngCharWidth  = 8.0
	pngCharHeight = 16.0
	pngFontSize   = 12.0
	pngPadding    = 2
)
