package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFormSection draws content inside a rounded border whose top edge
// carries the title and an optional parenthesised hint:
//
//	╭─ Title (hint) ─────╮
//	│content             │
//	╰────────────────────╯
//
// width is the total width including borders and is clamped to at least 3.
func RenderFormSection(content []string, title, hint string, width int, focused bool, focusColor lipgloss.TerminalColor) string {
	width = max(width, 3)
	inner := width - 2

	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = focusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	var sb strings.Builder
	sb.WriteString(renderTop(border, title, hint, inner))
	sb.WriteString("\n")

	for _, line := range content {
		if w := ansi.StringWidth(line); w > inner {
			line = ansi.Truncate(line, inner, "")
		} else {
			line += strings.Repeat(" ", inner-w)
		}
		sb.WriteString(border.Render("│"))
		sb.WriteString(line)
		sb.WriteString(border.Render("│"))
		sb.WriteString("\n")
	}

	sb.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return sb.String()
}

func renderTop(border lipgloss.Style, title, hint string, inner int) string {
	if title == "" {
		return border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}

	head := "─ " + title + " "
	if ansi.StringWidth(head) > inner {
		return border.Render("╭" + ansi.Truncate(head, inner, "") + "╮")
	}

	used := ansi.StringWidth(head)
	var hintPart string
	if hint != "" {
		h := "(" + hint + ") "
		if used+ansi.StringWidth(h) <= inner {
			hintPart = MutedStyle.Render(h)
			used += ansi.StringWidth(h)
		}
	}

	return border.Render("╭"+head) + hintPart + border.Render(strings.Repeat("─", inner-used)+"╮")
}
