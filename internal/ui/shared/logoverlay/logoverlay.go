// Package logoverlay shows the buffered log lines on top of the running
// program, filtered by level.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/overlay"
	"github.com/zjrosen/spark/internal/ui/styles"
)

const (
	maxEntries    = 1000
	maxBoxWidth   = 90
	minBoxWidth   = 40
	maxViewHeight = 20
	minViewHeight = 4
	chromeHeight  = 6 // title, two dividers, hint line, border
)

// CloseMsg is sent when the overlay hides itself.
type CloseMsg struct{}

var levelKeys = []struct {
	key   string
	label string
	level log.Level
}{
	{"d", "Debug", log.LevelDebug},
	{"i", "Info", log.LevelInfo},
	{"w", "Warn", log.LevelWarn},
	{"e", "Error", log.LevelError},
}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
}

// New returns a hidden overlay for a width×height screen.
func New(width, height int) Model {
	m := Model{minLevel: log.LevelDebug}
	m.SetSize(width, height)
	return m
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool { return m.visible }

// MinLevel returns the lowest level currently listed.
func (m Model) MinLevel() log.Level { return m.minLevel }

// Toggle shows a hidden overlay and hides a visible one.
func (m *Model) Toggle() {
	if m.visible {
		m.visible = false
		return
	}
	m.Show()
}

// Show makes the overlay visible with fresh content scrolled to the end.
func (m *Model) Show() {
	m.visible = true
	m.refresh()
	m.viewport.GotoBottom()
}

// Hide hides the overlay.
func (m *Model) Hide() { m.visible = false }

// SetSize resizes the overlay to a new screen size.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.viewport = viewport.New(m.contentWidth(), m.viewHeight())
	m.refresh()
}

// Update handles keys while the overlay is visible. Hidden overlays ignore
// every message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		k := msg.String()
		for _, lk := range levelKeys {
			if k == lk.key {
				m.minLevel = lk.level
				m.refresh()
				return m, nil
			}
		}

		switch k {
		case "c":
			log.ClearBuffer()
			m.refresh()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	return m, nil
}

// View renders the overlay box, or "" while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", m.contentWidth()))

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.OverlayTitle.PaddingLeft(1).Render("Logs"),
		divider,
		m.viewport.View(),
		divider,
		m.hint(),
	)
	return styles.OverlayBox.Width(w - 2).Render(body)
}

// Overlay draws the overlay centered over bg, which is a width×height frame.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	fg := m.View()
	fw, fh := overlay.Size(fg)
	x, y := overlay.Center(m.width, m.height, fw, fh)
	return overlay.Place(bg, fg, x, y, m.width, m.height)
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, maxBoxWidth), minBoxWidth)
}

// contentWidth excludes the border and the box padding.
func (m Model) contentWidth() int {
	return m.boxWidth() - 4
}

func (m Model) viewHeight() int {
	return max(min(maxViewHeight, m.height-chromeHeight), minViewHeight)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	entries := log.Recent(maxEntries, m.minLevel)
	if len(entries) == 0 {
		return styles.MutedStyle.Italic(true).Render("No logs to display")
	}

	width := m.contentWidth()
	lines := make([]string, len(entries))
	for i, e := range entries {
		line := e.Line
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines[i] = levelStyle(e.Level).Render(line)
	}
	return strings.Join(lines, "\n")
}

func levelStyle(l log.Level) lipgloss.Style {
	switch l {
	case log.LevelError:
		return styles.ErrorStyle
	case log.LevelWarn:
		return lipgloss.NewStyle().Foreground(styles.ButtonRedColor)
	case log.LevelInfo:
		return lipgloss.NewStyle().Foreground(styles.BorderHighlightFocusColor)
	default:
		return styles.MutedStyle
	}
}

// hint lists the key bindings with the active level filter in bold.
func (m Model) hint() string {
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{styles.MutedStyle.Render("[c] Clear")}
	for _, lk := range levelKeys {
		label := "[" + lk.key + "] " + lk.label
		if lk.level == m.minLevel {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, styles.MutedStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
