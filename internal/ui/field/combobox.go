package field

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spark/internal/ui/styles"
)

// Combobox selects one of a fixed list of items. Left/right (or h/l) cycle
// through the items while focused.
type Combobox struct {
	base
	selected int // -1 when nothing is selected
}

func newCombobox(spec Spec) (Field, error) {
	c := &Combobox{base: base{spec: spec}, selected: -1}
	if spec.SelectedValue != nil {
		c.selected = indexOf(spec.Items, spec.SelectedValue)
	}
	return c, nil
}

// Items returns the combobox choices.
func (c *Combobox) Items() []Item { return c.spec.Items }

// Selected returns the selected index, or -1.
func (c *Combobox) Selected() int { return c.selected }

// Render implements Field.
func (c *Combobox) Render() string {
	if len(c.spec.Items) == 0 {
		return styles.MutedStyle.Render("(no items)")
	}

	var title string
	if c.selected < 0 {
		title = styles.MutedStyle.Render(placeholderOr(c.spec.Placeholder, "(none)"))
	} else {
		title = c.spec.Items[c.selected].Title
	}

	if !c.focused {
		return title
	}
	var sb strings.Builder
	sb.WriteString(styles.MutedStyle.Render("‹ "))
	sb.WriteString(title)
	sb.WriteString(styles.MutedStyle.Render(" ›"))
	return sb.String()
}

func placeholderOr(p, fallback string) string {
	if p != "" {
		return p
	}
	return fallback
}

// Value implements Field.
func (c *Combobox) Value() any {
	if c.selected < 0 || c.selected >= len(c.spec.Items) {
		return NoSelection
	}
	return c.spec.Items[c.selected].Value
}

// SetValue implements Field. v must equal the Value of one of the items;
// NoSelection clears the selection.
func (c *Combobox) SetValue(v any) error {
	if v == NoSelection {
		c.selected = -1
		return nil
	}
	i := indexOf(c.spec.Items, v)
	if i < 0 {
		return &InvalidValueError{Field: c.spec.Name, Value: v, Reason: "not among items"}
	}
	c.selected = i
	return nil
}

// Validate implements Field.
func (c *Combobox) Validate() error {
	if c.spec.Required && c.selected < 0 {
		return &ValidationError{Field: c.spec.Name, Reason: "a selection is required"}
	}
	return nil
}

// Focus implements Field.
func (c *Combobox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur implements Field.
func (c *Combobox) Blur() { c.focused = false }

// Update implements Field.
func (c *Combobox) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !c.focused || !ok || len(c.spec.Items) == 0 {
		return nil
	}

	n := len(c.spec.Items)
	switch key.String() {
	case "right", "l":
		c.selected = (c.selected + 1) % n
	case "left", "h":
		if c.selected <= 0 {
			c.selected = n - 1
		} else {
			c.selected--
		}
	}
	return nil
}
