package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spark/internal/ui/styles"
)

// Text is a single-line input backed by bubbles/textinput.
type Text struct {
	base
	input textinput.Model
}

// defaultWidth keeps placeholders fully visible until the form sets a width.
const defaultWidth = 40

func newText(spec Spec) (Field, error) {
	return buildText(spec, textinput.EchoNormal), nil
}

func newPassword(spec Spec) (Field, error) {
	return buildText(spec, textinput.EchoPassword), nil
}

func buildText(spec Spec, echo textinput.EchoMode) *Text {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = spec.Placeholder
	ti.CharLimit = spec.CharLimit
	ti.Width = defaultWidth
	ti.EchoMode = echo
	ti.EchoCharacter = '•'
	ti.PlaceholderStyle = styles.MutedStyle
	ti.SetValue(spec.Value)
	ti.Blur()

	return &Text{base: base{spec: spec}, input: ti}
}

// Render implements Field.
func (t *Text) Render() string {
	return t.input.View()
}

// Value implements Field.
func (t *Text) Value() any {
	return t.input.Value()
}

// SetValue implements Field. Only strings within CharLimit are accepted.
func (t *Text) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return &InvalidValueError{Field: t.spec.Name, Value: v, Reason: "expected string"}
	}
	if t.spec.CharLimit > 0 && len([]rune(s)) > t.spec.CharLimit {
		return &InvalidValueError{Field: t.spec.Name, Value: v, Reason: "exceeds character limit"}
	}
	t.input.SetValue(s)
	return nil
}

// Validate implements Field.
func (t *Text) Validate() error {
	if t.spec.Required && strings.TrimSpace(t.input.Value()) == "" {
		return &ValidationError{Field: t.spec.Name, Reason: "is required"}
	}
	return nil
}

// Focus implements Field.
func (t *Text) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur implements Field.
func (t *Text) Blur() {
	t.focused = false
	t.input.Blur()
}

// SetWidth sets the visible width of the input.
func (t *Text) SetWidth(w int) {
	t.input.Width = max(w, 1)
}

// Update implements Field. Keys are only consumed while focused.
func (t *Text) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}
