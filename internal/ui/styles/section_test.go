package styles

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var focusBlue = lipgloss.Color("#54A0FF")

func TestRenderFormSection_Layout(t *testing.T) {
	out := RenderFormSection([]string{" abc"}, "Modal title", "", 20, false, focusBlue)

	require.Equal(t, strings.Join([]string{
		"╭─ Modal title ────╮",
		"│ abc              │",
		"╰──────────────────╯",
	}, "\n"), out)
}

func TestRenderFormSection_EveryLineHasWidth(t *testing.T) {
	for _, width := range []int{3, 12, 30, 61} {
		out := RenderFormSection(
			[]string{"", " short", " " + strings.Repeat("long ", 20)},
			"Is removable when overlay clicked", "required", width, true, focusBlue,
		)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 5)
		for _, line := range lines {
			require.Equal(t, width, lipgloss.Width(line), "width %d: %q", width, line)
		}
	}
}

func TestRenderFormSection_Hint(t *testing.T) {
	out := RenderFormSection([]string{"x"}, "Button set", "←/→", 40, false, focusBlue)
	top := strings.Split(out, "\n")[0]
	require.True(t, strings.HasPrefix(top, "╭─ Button set (←/→) ─"), top)

	// The hint is dropped before the title is cut.
	narrow := RenderFormSection([]string{"x"}, "Button set", "choose one", 20, false, focusBlue)
	top = strings.Split(narrow, "\n")[0]
	require.Contains(t, top, "Button set")
	require.NotContains(t, top, "choose")
}

func TestRenderFormSection_LongTitleIsCut(t *testing.T) {
	out := RenderFormSection(nil, "Is removable when overlay clicked", "", 16, false, focusBlue)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "╭─ Is removable╮", lines[0])
	require.Equal(t, 16, lipgloss.Width(lines[0]))
}

func TestRenderFormSection_NoTitle(t *testing.T) {
	out := RenderFormSection([]string{"x"}, "", "ignored", 6, false, focusBlue)
	require.Equal(t, "╭────╮\n│x   │\n╰────╯", out)
}

func TestRenderFormSection_WidthClamped(t *testing.T) {
	out := RenderFormSection([]string{"abc"}, "", "", 0, false, focusBlue)
	require.Equal(t, "╭─╮\n│a│\n╰─╯", out)
}

func TestRenderFormSection_FocusDoesNotChangeLayout(t *testing.T) {
	content := []string{" value"}
	require.Equal(t,
		lipgloss.Width(RenderFormSection(content, "Modal content", "", 24, false, focusBlue)),
		lipgloss.Width(RenderFormSection(content, "Modal content", "", 24, true, focusBlue)),
	)
}
