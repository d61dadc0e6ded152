package field

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var yesNo = []Item{{Title: "Yes", Value: 1}, {Title: "No", Value: 0}}

func mustNew(t *testing.T, spec Spec) Field {
	t.Helper()
	f, err := New(spec)
	require.NoError(t, err)
	return f
}

func key(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// --- Construction ---

func TestTypes_Sorted(t *testing.T) {
	require.Equal(t, []Type{TypeCheckbox, TypeCombobox, TypePassword, TypeText}, Types())
}

func TestNew_DispatchesByType(t *testing.T) {
	require.IsType(t, &Text{}, mustNew(t, Spec{Type: TypeText, Name: "a"}))
	require.IsType(t, &Text{}, mustNew(t, Spec{Type: TypePassword, Name: "b"}))
	require.IsType(t, &Checkbox{}, mustNew(t, Spec{Type: TypeCheckbox, Name: "c"}))
	require.IsType(t, &Combobox{}, mustNew(t, Spec{Type: TypeCombobox, Name: "d"}))
}

func TestNew_RejectsInconsistentSpecs(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		reason string
	}{
		{"missing name", Spec{Type: TypeText}, "name is required"},
		{"unknown type", Spec{Type: "slider", Name: "x"}, "unknown field type"},
		{"checked on text", Spec{Type: TypeText, Name: "x", Checked: true}, "checked is only valid"},
		{"items on checkbox", Spec{Type: TypeCheckbox, Name: "x", Items: yesNo}, "items are only valid"},
		{"selected on text", Spec{Type: TypeText, Name: "x", SelectedValue: 1}, "selectedValue is only valid"},
		{"value on combobox", Spec{Type: TypeCombobox, Name: "x", Value: "a"}, "value is only valid"},
		{"selected not among items", Spec{Type: TypeCombobox, Name: "x", Items: yesNo, SelectedValue: 7}, "does not match any item"},
		{"negative limit", Spec{Type: TypeText, Name: "x", CharLimit: -1}, "must not be negative"},
		{"value over limit", Spec{Type: TypeText, Name: "x", CharLimit: 2, Value: "abc"}, "exceeds charLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.spec)
			var specErr *SpecError
			require.ErrorAs(t, err, &specErr)
			require.Contains(t, specErr.Reason, tt.reason)
		})
	}
}

// --- Text ---

func TestText_ValueRoundTrip(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "title", Value: "initial"})
	require.Equal(t, "initial", f.Value())

	require.NoError(t, f.SetValue("Hi"))
	require.Equal(t, "Hi", f.Value())
}

func TestText_SetValueRejectsNonString(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "title"})

	var invalid *InvalidValueError
	require.ErrorAs(t, f.SetValue(42), &invalid)
	require.Equal(t, "title", invalid.Field)
	require.Equal(t, "", f.Value(), "a rejected value must not change state")
}

func TestText_SetValueRespectsCharLimit(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "code", CharLimit: 3})

	var invalid *InvalidValueError
	require.ErrorAs(t, f.SetValue("abcd"), &invalid)
	require.NoError(t, f.SetValue("abc"))
}

func TestText_TypingOnlyWhenFocused(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "title"})

	f.Update(key("a"))
	require.Equal(t, "", f.Value())

	f.Focus()
	f.Update(key("H"))
	f.Update(key("i"))
	require.Equal(t, "Hi", f.Value())
	require.True(t, f.Focused())

	f.Blur()
	require.False(t, f.Focused())
}

func TestText_RequiredValidation(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "title", Required: true})

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(), &verr)
	require.Equal(t, "title", verr.Field)

	require.NoError(t, f.SetValue("  "))
	require.Error(t, f.Validate(), "whitespace does not satisfy required")

	require.NoError(t, f.SetValue("ok"))
	require.NoError(t, f.Validate())
}

func TestPassword_MasksRender(t *testing.T) {
	f := mustNew(t, Spec{Type: TypePassword, Name: "secret", Value: "hunter2"})

	require.Equal(t, "hunter2", f.Value())
	require.NotContains(t, f.Render(), "hunter2")
}

func TestText_RenderShowsPlaceholder(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeText, Name: "title", Placeholder: "What is your modal title..."})
	require.Contains(t, f.Render(), "What is your modal title")
}

// --- Checkbox ---

func TestCheckbox_InitialAndToggle(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCheckbox, Name: "draggable", Checked: true})
	require.Equal(t, true, f.Value())
	require.Contains(t, f.Render(), "[x]")

	f.Update(key("space"))
	require.Equal(t, true, f.Value(), "unfocused checkbox ignores keys")

	f.Focus()
	f.Update(key("space"))
	require.Equal(t, false, f.Value())
	require.Contains(t, f.Render(), "[ ]")

	f.Update(key("x"))
	require.Equal(t, true, f.Value())
}

func TestCheckbox_SetValue(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCheckbox, Name: "closable"})

	require.NoError(t, f.SetValue(true))
	require.Equal(t, true, f.Value())

	var invalid *InvalidValueError
	require.ErrorAs(t, f.SetValue("true"), &invalid)
}

func TestCheckbox_RequiredValidation(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCheckbox, Name: "terms", Required: true})
	require.Error(t, f.Validate())
	require.NoError(t, f.SetValue(true))
	require.NoError(t, f.Validate())
}

// --- Combobox ---

func TestCombobox_SelectedValueAfterConstruction(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer", Items: yesNo, SelectedValue: 1})
	require.Equal(t, 1, f.Value())
	require.Contains(t, f.Render(), "Yes")
}

func TestCombobox_NoSelectionSentinel(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer", Items: yesNo})
	require.Equal(t, NoSelection, f.Value())
	require.Contains(t, f.Render(), "(none)")
}

func TestCombobox_EmptyItems(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer"})

	require.Equal(t, NoSelection, f.Value())
	require.Contains(t, f.Render(), "(no items)")

	f.Focus()
	f.Update(key("right"))
	require.Equal(t, NoSelection, f.Value())
}

func TestCombobox_SetValue(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer", Items: yesNo, SelectedValue: 1})

	require.NoError(t, f.SetValue(0))
	require.Equal(t, 0, f.Value())

	var invalid *InvalidValueError
	require.ErrorAs(t, f.SetValue(5), &invalid)
	require.Equal(t, 0, f.Value())

	require.NoError(t, f.SetValue(NoSelection))
	require.Equal(t, NoSelection, f.Value())
}

func TestCombobox_Cycling(t *testing.T) {
	items := []Item{{Title: "A", Value: "a"}, {Title: "B", Value: "b"}, {Title: "C", Value: "c"}}
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "letter", Items: items})
	f.Focus()

	f.Update(key("right"))
	require.Equal(t, "a", f.Value(), "first move selects the first item")

	f.Update(key("l"))
	f.Update(key("l"))
	require.Equal(t, "c", f.Value())

	f.Update(key("right"))
	require.Equal(t, "a", f.Value(), "wraps forward")

	f.Update(key("left"))
	require.Equal(t, "c", f.Value(), "wraps backward")

	f.Update(key("h"))
	require.Equal(t, "b", f.Value())
}

func TestCombobox_LeftFromNoSelectionPicksLast(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer", Items: yesNo})
	f.Focus()
	f.Update(key("left"))
	require.Equal(t, 0, f.Value())
}

func TestCombobox_RequiredValidation(t *testing.T) {
	f := mustNew(t, Spec{Type: TypeCombobox, Name: "answer", Items: yesNo, Required: true})
	require.Error(t, f.Validate())
	require.NoError(t, f.SetValue(1))
	require.NoError(t, f.Validate())
}

func TestRender_DoesNotMutate(t *testing.T) {
	specs := []Spec{
		{Type: TypeText, Name: "t", Value: "v"},
		{Type: TypeCheckbox, Name: "c", Checked: true},
		{Type: TypeCombobox, Name: "k", Items: yesNo, SelectedValue: 0},
	}
	for _, spec := range specs {
		f := mustNew(t, spec)
		before := f.Value()
		first := f.Render()
		require.Equal(t, first, f.Render())
		require.Equal(t, before, f.Value())
	}
}
