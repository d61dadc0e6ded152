// Package markdown renders markdown for modal bodies with glamour.
package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"

	"github.com/zjrosen/spark/internal/log"
)

// Renderers are built per wrap width; building one parses the whole style
// sheet, so they are kept around for reuse.
var renderers = cache.New(30*time.Minute, time.Hour)

const defaultWidth = 80

// Render formats md for a block of the given width. The "notty" style is
// used so output does not depend on the terminal's color support. A
// non-positive width wraps at 80 cells.
func Render(md string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := renderer(width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

func renderer(width int) (*glamour.TermRenderer, error) {
	key := strconv.Itoa(width)
	if r, ok := renderers.Get(key); ok {
		return r.(*glamour.TermRenderer), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	renderers.Set(key, r, cache.DefaultExpiration)
	log.Debug(log.CatUI, "markdown renderer created", "width", width)
	return r, nil
}

// Flush drops every cached renderer.
func Flush() {
	renderers.Flush()
}
