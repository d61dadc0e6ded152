// Package button renders the button rows shared by forms and modals and maps
// mouse clicks back to button indexes through bubblezone.
package button

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/spark/internal/ui/styles"
)

// Zone ID format: {owner}:btn:{index}
// The owner is the id of the form or modal drawing the row, so several rows
// can be on screen at once without their zones colliding.

// ZoneID returns the zone id of button i in the row drawn by owner.
func ZoneID(owner string, i int) string {
	return fmt.Sprintf("%s:btn:%d", owner, i)
}

// ParseZoneID extracts the owner and button index from a zone id.
// Returns ("", 0, false) when id was not produced by ZoneID.
func ParseZoneID(id string) (owner string, index int, ok bool) {
	at := strings.LastIndex(id, ":btn:")
	if at <= 0 {
		return "", 0, false
	}
	index, err := strconv.Atoi(id[at+len(":btn:"):])
	if err != nil || index < 0 {
		return "", 0, false
	}
	return id[:at], index, true
}

// Item is the presentation of one button.
type Item struct {
	Title string
	// Class is a whitespace separated list of style classes, e.g. "blue small".
	Class string
}

// Row renders items left to right. focused is the index of the focused
// button, or -1 for none.
func Row(owner string, items []Item, focused int) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, "  ")
		}
		label := styles.Button(it.Class, i == focused).Render(it.Title)
		if i == focused {
			label = "▸" + label
		} else {
			label = " " + label
		}
		parts = append(parts, mark(ZoneID(owner, i), label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Hit reports which of the n buttons drawn by owner contains the mouse event.
func Hit(owner string, n int, msg tea.MouseMsg) (int, bool) {
	if zone.DefaultManager == nil {
		return 0, false
	}
	for i := range n {
		if z := zone.Get(ZoneID(owner, i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// mark wraps s in a zone marker when a global zone manager is running.
func mark(id, s string) string {
	if zone.DefaultManager == nil {
		return s
	}
	return zone.Mark(id, s)
}
