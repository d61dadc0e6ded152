package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { require.NoError(t, ApplyTheme(ThemeConfig{})) })
}

func TestApplyTheme(t *testing.T) {
	Presets["modal-test"] = Preset{
		Name: "modal-test",
		Colors: map[ColorToken]string{
			TokenOverlayBorder: "#112233",
			TokenButtonGreen:   "#00AA00",
		},
	}
	t.Cleanup(func() { delete(Presets, "modal-test") })

	tests := []struct {
		name   string
		cfg    ThemeConfig
		token  ColorToken
		want   string
		wantOK bool
	}{
		{"zero config is the default preset", ThemeConfig{}, TokenOverlayBorder, DefaultPreset.Colors[TokenOverlayBorder], true},
		{"preset color", ThemeConfig{Preset: "modal-test"}, TokenOverlayBorder, "#112233", true},
		{"preset falls back to default", ThemeConfig{Preset: "modal-test"}, TokenButtonRed, DefaultPreset.Colors[TokenButtonRed], true},
		{"override", ThemeConfig{Colors: map[string]string{"button.blue": "#0000EE"}}, TokenButtonBlue, "#0000EE", true},
		{
			"override beats preset",
			ThemeConfig{Preset: "modal-test", Colors: map[string]string{"button.green": "#ABC"}},
			TokenButtonGreen, "#ABC", true,
		},
		{"built-in high contrast", ThemeConfig{Preset: "high-contrast"}, TokenBorderFocus, "#FFD700", true},
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "", "unknown theme preset", false},
		{"unknown token", ThemeConfig{Colors: map[string]string{"modal.shadow": "#000000"}}, "", "unknown color token", false},
		{"bad hex", ThemeConfig{Colors: map[string]string{"text.primary": "red"}}, "", "invalid hex color", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetTheme(t)

			err := ApplyTheme(tt.cfg)
			if !tt.wantOK {
				require.ErrorContains(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			c := tokenColors[tt.token]
			require.Equal(t, tt.want, c.Dark)
			require.Equal(t, tt.want, c.Light)
		})
	}
}

func TestApplyTheme_EachCallStartsFromDefault(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "high-contrast"}))
	require.Equal(t, "#0080FF", ButtonBlueColor.Dark)

	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"status.error": "#FF0000"}}))
	require.Equal(t, DefaultPreset.Colors[TokenButtonBlue], ButtonBlueColor.Dark)
	require.Equal(t, "#FF0000", StatusErrorColor.Dark)
}

func TestApplyTheme_ErrorLeavesColorsUntouched(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	err := ApplyTheme(ThemeConfig{
		Preset: "high-contrast",
		Colors: map[string]string{"text.primary": "#FFFFFF", "button.blue": "blue"},
	})
	require.Error(t, err)
	require.Equal(t, DefaultPreset.Colors[TokenBorderFocus], BorderHighlightFocusColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
}

func TestApplyTheme_RebuildsDerivedStyles(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"status.error": "#123456"}}))
	require.Equal(t, StatusErrorColor, ErrorStyle.GetForeground())
}

func TestDefaultPresetCoversEveryToken(t *testing.T) {
	for token := range tokenColors {
		hex, ok := DefaultPreset.Colors[token]
		require.True(t, ok, "default preset is missing %s", token)
		require.True(t, isValidHexColor(hex), "%s: %s", token, hex)
	}
	require.Len(t, DefaultPreset.Colors, len(tokenColors))
}

func TestIsValidHexColor(t *testing.T) {
	for color, want := range map[string]bool{
		"#FFF":     true,
		"#54a0ff":  true,
		"#AbCdEf":  true,
		"FFFFFF":   false,
		"#FFFF":    false,
		"#GGGGGG":  false,
		"#1234567": false,
		"":         false,
	} {
		require.Equal(t, want, isValidHexColor(color), color)
	}
}

func TestTag(t *testing.T) {
	require.Equal(t, "Create your own modal", Tag("h3").Render("Create your own modal"))
	require.Equal(t, "plain", Tag("marquee").Render("plain"))
	require.True(t, Tag("H1").GetUnderline())
	require.True(t, Tag("strong").GetBold())
}

func TestButtonClasses(t *testing.T) {
	require.Equal(t, ButtonBlueColor, Button("blue small dark", false).GetBackground())
	require.Equal(t, ButtonDarkColor, Button("blue small dark", false).GetForeground())
	require.Equal(t, 1, Button("blue small dark", false).GetPaddingLeft())
	require.Equal(t, 2, Button("", false).GetPaddingLeft())
	require.Equal(t, ButtonRedColor, Button("blue red", false).GetBackground(), "later classes win")
	require.Equal(t, ButtonDefaultColor, Button("glow", false).GetBackground())
	require.True(t, Button("", true).GetBold())
}
