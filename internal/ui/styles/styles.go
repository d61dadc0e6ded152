// Package styles holds the shared lipgloss colors and styles of spark
// components, the theme presets that drive them, and the bordered form
// section renderer.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TextPrimaryColor          = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#E0E0E0"}
	TextSecondaryColor        = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#BBBBBB"}
	TextMutedColor            = lipgloss.AdaptiveColor{Light: "#696969", Dark: "#696969"}
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#696969", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonDefaultColor        = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#444444"}
	ButtonBlueColor           = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ButtonRedColor            = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	ButtonGreenColor          = lipgloss.AdaptiveColor{Light: "#73F59F", Dark: "#73F59F"}
	ButtonDarkColor           = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}
	OverlayTitleColor         = lipgloss.AdaptiveColor{Light: "#C9C9C9", Dark: "#C9C9C9"}
	OverlayBorderColor        = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#8C8C8C"}
	StatusErrorColor          = lipgloss.AdaptiveColor{Light: "#FF8787", Dark: "#FF8787"}
	SelectionCheckColor       = lipgloss.AdaptiveColor{Light: "#73F59F", Dark: "#73F59F"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	MutedStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	CheckStyle   lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayBox   lipgloss.Style
	OverlayFocus lipgloss.Style

	tagStyles map[string]lipgloss.Style
)

func init() {
	rebuild()
}

func rebuild() {
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	CheckStyle = lipgloss.NewStyle().Foreground(SelectionCheckColor).Bold(true)
	OverlayTitle = lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)
	OverlayBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayBorderColor).
		Padding(0, 1)
	OverlayFocus = OverlayBox.BorderForeground(BorderHighlightFocusColor)

	heading := lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	tagStyles = map[string]lipgloss.Style{
		"h1":     heading.Underline(true).MarginBottom(1),
		"h2":     heading.MarginBottom(1),
		"h3":     heading,
		"h4":     heading,
		"h5":     heading.Foreground(TextSecondaryColor),
		"h6":     heading.Foreground(TextSecondaryColor),
		"p":      lipgloss.NewStyle().Foreground(TextPrimaryColor),
		"strong": lipgloss.NewStyle().Bold(true),
		"em":     lipgloss.NewStyle().Italic(true),
		"small":  lipgloss.NewStyle().Foreground(TextMutedColor),
	}
}

// Tag returns the style for an element tag name. Unknown tags render plain.
func Tag(name string) lipgloss.Style {
	if s, ok := tagStyles[strings.ToLower(name)]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Button returns the style for a whitespace separated class list such as
// "blue small dark". Later classes override earlier ones; unknown classes
// are ignored.
func Button(class string, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(ButtonTextColor).
		Background(ButtonDefaultColor).
		Padding(0, 2)

	for _, c := range strings.Fields(class) {
		switch c {
		case "blue":
			s = s.Background(ButtonBlueColor)
		case "red":
			s = s.Background(ButtonRedColor)
		case "green":
			s = s.Background(ButtonGreenColor).Foreground(ButtonDarkColor)
		case "dark":
			s = s.Foreground(ButtonDarkColor)
		case "small":
			s = s.Padding(0, 1)
		}
	}

	if focused {
		s = s.Bold(true).Underline(true)
	}
	return s
}
