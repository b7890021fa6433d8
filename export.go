package main

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Sketch files are plain text: a header line, a segment count, then each
// segment as a cell count followed by one x,y,glyph line per cell.
const sketchHeader = "SCRAWL v1"

func saveSketch(filename string, segs []Segment) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n", sketchHeader)
	fmt.Fprintf(w, "SEGMENTS:%d\n", len(segs))
	for _, seg := range segs {
		cells := seg.Cells()
		fmt.Fprintf(w, "SEGMENT:%d\n", len(cells))
		for _, cell := range cells {
			fmt.Fprintf(w, "%d,%d,%c\n", cell.Pos.X, cell.Pos.Y, cell.Content)
		}
	}
	return w.Flush()
}

func loadSketch(filename string) ([]Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	if !scanner.Scan() || scanner.Text() != sketchHeader {
		return nil, fmt.Errorf("invalid sketch file")
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("missing segment count")
	}
	segCount, err := strconv.Atoi(strings.TrimPrefix(scanner.Text(), "SEGMENTS:"))
	if err != nil {
		return nil, fmt.Errorf("invalid segment count: %v", err)
	}

	segs := make([]Segment, 0, segCount)
	for i := 0; i < segCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("missing segment header")
		}
		cellCount, err := strconv.Atoi(strings.TrimPrefix(scanner.Text(), "SEGMENT:"))
		if err != nil {
			return nil, fmt.Errorf("invalid cell count: %v", err)
		}

		var seg Segment
		for j := 0; j < cellCount; j++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("missing cell data")
			}
			line := scanner.Text()
			// A glyph can itself be ',' or ' ', so only split the
			// first two fields.
			parts := strings.SplitN(line, ",", 3)
			if len(parts) != 3 || parts[2] == "" {
				return nil, fmt.Errorf("invalid cell format")
			}
			x, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("invalid cell format")
			}
			y, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("invalid cell format")
			}
			glyph, _ := utf8.DecodeRuneInString(parts[2])
			seg.Add(NewCell(Pt(x, y), glyph))
		}
		segs = append(segs, seg)
	}

	return segs, scanner.Err()
}

// mergedDrawing flattens strokes into one segment, in paint order.
func mergedDrawing(segs []Segment) Segment {
	var merged Segment
	for _, seg := range segs {
		merged.Concat(seg)
	}
	return merged
}

func exportVisualTXT(filename string, segs []Segment) error {
	merged := mergedDrawing(segs)
	if merged.IsEmpty() {
		return fmt.Errorf("nothing to export")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = fmt.Fprintln(file, merged.Block())
	return err
}

func yankToClipboard(segs []Segment) error {
	merged := mergedDrawing(segs)
	if merged.IsEmpty() {
		return fmt.Errorf("nothing to yank")
	}
	return clipboard.WriteAll(merged.Block())
}

func exportToPNG(filename string, segs []Segment) error {
	merged := mergedDrawing(segs)
	min, max, ok := merged.Bounds()
	if !ok {
		return fmt.Errorf("nothing to export")
	}

	minX := min.X - pngPadding
	minY := min.Y - pngPadding
	maxX := max.X + pngPadding
	maxY := max.Y + pngPadding

	imageWidth := int(float64(maxX-minX+1) * pngCharWidth)
	imageHeight := int(float64(maxY-minY+1) * pngCharHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Same overwrite rule as Block: the first glyph painted at a cell wins.
	seen := make(map[Point]bool)
	for _, cell := range merged.Cells() {
		if seen[cell.Pos] {
			continue
		}
		seen[cell.Pos] = true
		if cell.Content == ' ' {
			continue
		}
		x := float64(cell.Pos.X-minX) * pngCharWidth
		y := float64(cell.Pos.Y-minY+1) * pngCharHeight
		dc.DrawString(string(cell.Content), x, y)
	}

	return dc.SavePNG(filename)
}

// latestSketchFile returns the most recently modified sketch file in dir.
func latestSketchFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latest string
	var latestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sketchExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = entry.Name()
			latestMod = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no %s files in %s", sketchExt, dir)
	}
	return filepath.Join(dir, latest), nil
}
