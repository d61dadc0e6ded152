package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spark/internal/ui/styles"
)

// Checkbox is a boolean toggle. Space toggles it while focused.
type Checkbox struct {
	base
	checked bool
}

func newCheckbox(spec Spec) (Field, error) {
	return &Checkbox{base: base{spec: spec}, checked: spec.Checked}, nil
}

// Render implements Field.
func (c *Checkbox) Render() string {
	if c.checked {
		return styles.CheckStyle.Render("[x]") + " yes"
	}
	return "[ ]" + styles.MutedStyle.Render(" no")
}

// Value implements Field.
func (c *Checkbox) Value() any { return c.checked }

// SetValue implements Field. Only bools are accepted.
func (c *Checkbox) SetValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return &InvalidValueError{Field: c.spec.Name, Value: v, Reason: "expected bool"}
	}
	c.checked = b
	return nil
}

// Toggle flips the checkbox.
func (c *Checkbox) Toggle() { c.checked = !c.checked }

// Validate implements Field.
func (c *Checkbox) Validate() error {
	if c.spec.Required && !c.checked {
		return &ValidationError{Field: c.spec.Name, Reason: "must be checked"}
	}
	return nil
}

// Focus implements Field.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur implements Field.
func (c *Checkbox) Blur() { c.focused = false }

// Update implements Field.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && (key.Type == tea.KeySpace || key.String() == "x") {
		c.Toggle()
	}
	return nil
}
