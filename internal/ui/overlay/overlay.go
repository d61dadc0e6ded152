// Package overlay composites a foreground block over a background frame.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center returns the origin that centers a fgW×fgH block in a bgW×bgH frame.
func Center(bgW, bgH, fgW, fgH int) (x, y int) {
	return max((bgW-fgW)/2, 0), max((bgH-fgH)/2, 0)
}

// Clamp keeps a fgW×fgH block starting at (x, y) inside a bgW×bgH frame.
// Blocks larger than the frame are pinned to the top-left corner.
func Clamp(x, y, bgW, bgH, fgW, fgH int) (int, int) {
	x = min(x, bgW-fgW)
	y = min(y, bgH-fgH)
	return max(x, 0), max(y, 0)
}

// Place draws fg over bg with its top-left corner at (x, y). The result is
// exactly width×height cells: bg is padded or cut to fit, and fg cells
// outside the frame are dropped. Escape sequences inside fg are preserved.
func Place(bg, fg string, x, y, width, height int) string {
	bgLines := fit(bg, width, height)
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		bgLines[row] = composite(bgLines[row], fgLine, x, width)
	}
	return strings.Join(bgLines, "\n")
}

// composite replaces the cells [x, x+width(fg)) of bgLine with fgLine.
func composite(bgLine, fgLine string, x, width int) string {
	if x >= width {
		return bgLine
	}
	fgLine = ansi.Truncate(fgLine, width-x, "")
	fgW := ansi.StringWidth(fgLine)

	left := ansi.Truncate(bgLine, x, "")
	right := ""
	if x+fgW < width {
		right = ansi.TruncateLeft(bgLine, x+fgW, "")
	}
	return left + fgLine + right
}

// fit pads or cuts s into exactly height lines of exactly width cells.
func fit(s string, width, height int) []string {
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			line = ansi.Truncate(line, width, "")
		case w < width:
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}

// Size reports the cell width and line height of a rendered block.
func Size(block string) (w, h int) {
	return lipgloss.Width(block), lipgloss.Height(block)
}
