// Package field implements the form inputs of spark. Each input Type has one
// implementation of Field, selected through a static constructor table.
package field

import (
	"reflect"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spark/internal/log"
)

// Type identifies a field implementation.
type Type string

const (
	TypeText     Type = "text"
	TypePassword Type = "password"
	TypeCheckbox Type = "checkbox"
	TypeCombobox Type = "combobox"
)

// Item is one choice of a combobox.
type Item struct {
	Title string `yaml:"title" mapstructure:"title"`
	Value any    `yaml:"value" mapstructure:"value"`
}

// Spec declares one field of a form.
type Spec struct {
	Type        Type   `yaml:"type" mapstructure:"type"`
	Name        string `yaml:"name" mapstructure:"name"`
	Label       string `yaml:"label" mapstructure:"label"`
	Hint        string `yaml:"hint" mapstructure:"hint"`
	Placeholder string `yaml:"placeholder" mapstructure:"placeholder"`

	// Value is the initial text of text and password fields.
	Value string `yaml:"value" mapstructure:"value"`
	// CharLimit caps text input length; 0 means unlimited.
	CharLimit int `yaml:"charLimit" mapstructure:"charLimit"`

	// Checked is the initial state of a checkbox.
	Checked bool `yaml:"checked" mapstructure:"checked"`

	// Items are the choices of a combobox, in display order.
	Items []Item `yaml:"items" mapstructure:"items"`
	// SelectedValue preselects the item with this value. nil selects nothing.
	SelectedValue any `yaml:"selectedValue" mapstructure:"selectedValue"`

	// Required makes Validate fail on an empty text, an unchecked checkbox
	// or a combobox without selection.
	Required bool `yaml:"required" mapstructure:"required"`
}

// Field is a single interactive input.
type Field interface {
	Name() string
	Label() string
	Hint() string
	Type() Type

	// Render draws the control. It never changes field state.
	Render() string
	// Value returns the current value in its semantic type: string for
	// text and password, bool for checkbox, the selected item's Value (or
	// NoSelection) for combobox.
	Value() any
	// SetValue replaces the value, failing with *InvalidValueError when v is
	// outside the field's domain.
	SetValue(v any) error
	// Validate checks the field's own constraints.
	Validate() error

	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
}

type noSelection struct{}

func (noSelection) String() string { return "<no selection>" }

// NoSelection is the value of a combobox with nothing selected.
var NoSelection any = noSelection{}

type constructor func(Spec) (Field, error)

var constructors = map[Type]constructor{
	TypeText:     newText,
	TypePassword: newPassword,
	TypeCheckbox: newCheckbox,
	TypeCombobox: newCombobox,
}

// Types lists the supported field types in sorted order.
func Types() []Type {
	out := make([]Type, 0, len(constructors))
	for t := range constructors {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// New checks spec for consistency and constructs the matching field.
func New(spec Spec) (Field, error) {
	if spec.Name == "" {
		return nil, &SpecError{Name: spec.Name, Reason: "name is required"}
	}
	ctor, ok := constructors[spec.Type]
	if !ok {
		return nil, &SpecError{Name: spec.Name, Reason: "unknown field type " + quote(string(spec.Type))}
	}
	if err := checkSpec(spec); err != nil {
		return nil, err
	}

	f, err := ctor(spec)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatField, "constructed", "name", spec.Name, "type", spec.Type)
	return f, nil
}

// checkSpec rejects options that do not belong to the spec's type.
func checkSpec(spec Spec) error {
	isText := spec.Type == TypeText || spec.Type == TypePassword
	isChoice := spec.Type == TypeCombobox

	switch {
	case spec.Checked && spec.Type != TypeCheckbox:
		return &SpecError{Name: spec.Name, Reason: "checked is only valid for checkbox fields"}
	case len(spec.Items) > 0 && !isChoice:
		return &SpecError{Name: spec.Name, Reason: "items are only valid for combobox fields"}
	case spec.SelectedValue != nil && !isChoice:
		return &SpecError{Name: spec.Name, Reason: "selectedValue is only valid for combobox fields"}
	case spec.Value != "" && !isText:
		return &SpecError{Name: spec.Name, Reason: "value is only valid for text fields"}
	case spec.CharLimit < 0:
		return &SpecError{Name: spec.Name, Reason: "charLimit must not be negative"}
	case spec.CharLimit > 0 && len([]rune(spec.Value)) > spec.CharLimit:
		return &SpecError{Name: spec.Name, Reason: "value exceeds charLimit"}
	}

	if isChoice && spec.SelectedValue != nil && indexOf(spec.Items, spec.SelectedValue) < 0 {
		return &SpecError{Name: spec.Name, Reason: "selectedValue does not match any item"}
	}
	return nil
}

func indexOf(items []Item, v any) int {
	for i, it := range items {
		if reflect.DeepEqual(it.Value, v) {
			return i
		}
	}
	return -1
}

// base carries the spec shared by every implementation.
type base struct {
	spec    Spec
	focused bool
}

func (b *base) Name() string  { return b.spec.Name }
func (b *base) Label() string { return b.spec.Label }
func (b *base) Hint() string  { return b.spec.Hint }
func (b *base) Type() Type    { return b.spec.Type }
func (b *base) Focused() bool { return b.focused }
