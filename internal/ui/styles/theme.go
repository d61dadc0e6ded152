package styles

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// ColorToken names a themable color slot, e.g. "text.primary".
type ColorToken string

const (
	TokenTextPrimary    ColorToken = "text.primary"
	TokenTextSecondary  ColorToken = "text.secondary"
	TokenTextMuted      ColorToken = "text.muted"
	TokenBorderDefault  ColorToken = "border.default"
	TokenBorderFocus    ColorToken = "border.focus"
	TokenButtonText     ColorToken = "button.text"
	TokenButtonDefault  ColorToken = "button.default"
	TokenButtonBlue     ColorToken = "button.blue"
	TokenButtonRed      ColorToken = "button.red"
	TokenButtonGreen    ColorToken = "button.green"
	TokenButtonDark     ColorToken = "button.dark"
	TokenOverlayTitle   ColorToken = "overlay.title"
	TokenOverlayBorder  ColorToken = "overlay.border"
	TokenStatusError    ColorToken = "status.error"
	TokenSelectionCheck ColorToken = "selection.check"
)

// Preset is a named set of token colors.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// ThemeConfig is the theme section of the user config.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset" yaml:"preset"`
	Colors map[string]string `mapstructure:"colors" yaml:"colors"`
}

// DefaultPreset is applied when no preset is configured.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default spark colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:    "#E0E0E0",
		TokenTextSecondary:  "#BBBBBB",
		TokenTextMuted:      "#696969",
		TokenBorderDefault:  "#696969",
		TokenBorderFocus:    "#54A0FF",
		TokenButtonText:     "#FFFFFF",
		TokenButtonDefault:  "#444444",
		TokenButtonBlue:     "#54A0FF",
		TokenButtonRed:      "#FF6B6B",
		TokenButtonGreen:    "#73F59F",
		TokenButtonDark:     "#2D2D2D",
		TokenOverlayTitle:   "#C9C9C9",
		TokenOverlayBorder:  "#8C8C8C",
		TokenStatusError:    "#FF8787",
		TokenSelectionCheck: "#73F59F",
	},
}

// Presets holds the built-in presets by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Bright borders and buttons",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#FFFFFF",
			TokenBorderDefault: "#FFFFFF",
			TokenBorderFocus:   "#FFD700",
			TokenButtonBlue:    "#0080FF",
			TokenButtonDefault: "#000000",
		},
	},
}

// tokenColors maps each token to the color variable it drives.
var tokenColors = map[ColorToken]*lipgloss.AdaptiveColor{
	TokenTextPrimary:    &TextPrimaryColor,
	TokenTextSecondary:  &TextSecondaryColor,
	TokenTextMuted:      &TextMutedColor,
	TokenBorderDefault:  &BorderDefaultColor,
	TokenBorderFocus:    &BorderHighlightFocusColor,
	TokenButtonText:     &ButtonTextColor,
	TokenButtonDefault:  &ButtonDefaultColor,
	TokenButtonBlue:     &ButtonBlueColor,
	TokenButtonRed:      &ButtonRedColor,
	TokenButtonGreen:    &ButtonGreenColor,
	TokenButtonDark:     &ButtonDarkColor,
	TokenOverlayTitle:   &OverlayTitleColor,
	TokenOverlayBorder:  &OverlayBorderColor,
	TokenStatusError:    &StatusErrorColor,
	TokenSelectionCheck: &SelectionCheckColor,
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isValidToken(t ColorToken) bool {
	_, ok := tokenColors[t]
	return ok
}

func isValidHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// ApplyTheme resets every color to the default preset, then layers the
// configured preset and finally the per-token overrides. Validation happens
// before any color is touched.
func ApplyTheme(cfg ThemeConfig) error {
	preset := DefaultPreset
	if cfg.Preset != "" {
		p, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q", cfg.Preset)
		}
		preset = p
	}

	for name, hex := range cfg.Colors {
		if !isValidToken(ColorToken(name)) {
			return fmt.Errorf("unknown color token %q", name)
		}
		if !isValidHexColor(hex) {
			return fmt.Errorf("invalid hex color %q for %s", hex, name)
		}
	}

	for token, hex := range DefaultPreset.Colors {
		setColor(token, hex)
	}
	for token, hex := range preset.Colors {
		setColor(token, hex)
	}
	for name, hex := range cfg.Colors {
		setColor(ColorToken(name), hex)
	}

	rebuild()
	return nil
}

func setColor(token ColorToken, hex string) {
	if c, ok := tokenColors[token]; ok {
		c.Light = hex
		c.Dark = hex
	}
}
