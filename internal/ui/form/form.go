// Package form turns a declarative list of field specs into a mounted,
// interactive set of fields and back into a plain keyed value map.
package form

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/button"
	"github.com/zjrosen/spark/internal/ui/field"
	"github.com/zjrosen/spark/internal/ui/styles"
	"github.com/zjrosen/spark/internal/ui/view"
)

const defaultWidth = 60

// Button is one entry of the form's button row.
type Button struct {
	Title string
	// Class is a whitespace separated style class list, e.g. "blue small dark".
	Class string
	// Validate gates the callback on Form.Validate succeeding.
	Validate bool
	// Callback runs once per activation and receives the form it belongs to.
	Callback func(f *Form) tea.Cmd
}

// Config describes a form.
type Config struct {
	Title    string
	Inputs   []field.Spec
	Buttons  []Button
	RenderTo view.Container
	Width    int
	// Validate is an optional form-level check run after every field passed.
	Validate func(data map[string]any) error
}

// Form owns an ordered set of fields mounted under one view.
type Form struct {
	view     *view.View
	title    string
	fields   []field.Field
	byName   map[string]int
	buttons  []Button
	validate func(map[string]any) error
	width    int

	focusedIndex  int // index into fields, -1 = button row
	focusedButton int
	err           error
	released      bool
}

// New builds every field and then mounts the form into cfg.RenderTo.
// Spec errors, duplicate names and a missing container are all reported
// before anything is attached.
func New(cfg Config) (*Form, error) {
	byName := make(map[string]int, len(cfg.Inputs))
	for i, spec := range cfg.Inputs {
		if first, ok := byName[spec.Name]; ok {
			return nil, &DuplicateFieldNameError{Name: spec.Name, First: first, Second: i}
		}
		byName[spec.Name] = i
	}

	fields := make([]field.Field, 0, len(cfg.Inputs))
	for _, spec := range cfg.Inputs {
		f, err := field.New(spec)
		if err != nil {
			return nil, fmt.Errorf("building form %q: %w", cfg.Title, err)
		}
		fields = append(fields, f)
	}

	v, err := view.New(view.Config{TagName: "form", RenderTo: cfg.RenderTo})
	if err != nil {
		return nil, err
	}

	f := &Form{
		view:     v,
		title:    cfg.Title,
		fields:   fields,
		byName:   byName,
		buttons:  cfg.Buttons,
		validate: cfg.Validate,
		width:    defaultWidth,
	}
	if cfg.Width > 0 {
		f.SetWidth(cfg.Width)
	} else {
		f.SetWidth(defaultWidth)
	}
	v.Append(view.NodeFunc(f.renderBody))

	if len(fields) > 0 {
		f.focusedIndex = 0
		fields[0].Focus()
	} else {
		f.focusedIndex = -1
	}

	if err := v.Mount(); err != nil {
		return nil, err
	}
	log.Info(log.CatForm, "form mounted", "title", cfg.Title, "fields", len(fields), "buttons", len(cfg.Buttons))
	return f, nil
}

// ID returns the id the form is attached under.
func (f *Form) ID() string { return f.view.ID() }

// Title returns the form title.
func (f *Form) Title() string { return f.title }

// Mounted reports whether the form is attached to its container.
func (f *Form) Mounted() bool { return f.view.Mounted() }

// SetWidth sets the outer width of the field sections.
func (f *Form) SetWidth(w int) {
	f.width = max(w, 10)
	for _, fl := range f.fields {
		if t, ok := fl.(*field.Text); ok {
			t.SetWidth(f.width - 6)
		}
	}
}

// Keys returns the field names in registration order.
func (f *Form) Keys() []string {
	out := make([]string, len(f.fields))
	for i, fl := range f.fields {
		out[i] = fl.Name()
	}
	return out
}

// Data returns a snapshot of every field value keyed by name. It never
// changes field state.
func (f *Form) Data() map[string]any {
	data := make(map[string]any, len(f.fields))
	for _, fl := range f.fields {
		data[fl.Name()] = fl.Value()
	}
	return data
}

// Field returns the field registered under name.
func (f *Form) Field(name string) (field.Field, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.fields[i], true
}

// Fields returns the fields in registration order.
func (f *Form) Fields() []field.Field {
	return append([]field.Field(nil), f.fields...)
}

// Validate runs every field's validation and then the form-level hook.
// Any failure fails the whole form.
func (f *Form) Validate() error {
	var errs []error
	for _, fl := range f.fields {
		if err := fl.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if f.validate != nil {
		return f.validate(f.Data())
	}
	return nil
}

// Err returns the error shown under the fields after a gated press failed.
func (f *Form) Err() error { return f.err }

// Press activates button i. Buttons with Validate set only run their
// callback when the form validates; the validation error is returned and
// displayed instead.
func (f *Form) Press(i int) (tea.Cmd, error) {
	if f.released {
		return nil, ErrReleased
	}
	if i < 0 || i >= len(f.buttons) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchButton, i)
	}

	b := f.buttons[i]
	if b.Validate {
		if err := f.Validate(); err != nil {
			f.err = err
			log.Debug(log.CatForm, "press rejected", "button", b.Title, "error", err)
			return nil, err
		}
	}
	f.err = nil

	log.Debug(log.CatForm, "button pressed", "form", f.title, "button", b.Title)
	if b.Callback == nil {
		return nil, nil
	}
	return b.Callback(f), nil
}

// Update routes input to the focused field and handles focus movement and
// button activation.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.released {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if i, ok := button.Hit(f.ID(), len(f.buttons), msg); ok {
			f.focusButton(i)
			cmd, _ := f.Press(i)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Next):
			return f.next()
		case key.Matches(msg, keys.Prev):
			return f.prev()
		}

		if f.focusedIndex < 0 {
			switch {
			case key.Matches(msg, keys.Enter):
				cmd, _ := f.Press(f.focusedButton)
				return cmd
			case key.Matches(msg, keys.Left):
				if f.focusedButton > 0 {
					f.focusedButton--
				}
			case key.Matches(msg, keys.Right):
				if f.focusedButton < len(f.buttons)-1 {
					f.focusedButton++
				}
			}
			return nil
		}

		if key.Matches(msg, keys.Enter) {
			return f.next()
		}
	}

	if f.focusedIndex >= 0 && f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Update(msg)
	}
	return nil
}

// focus order: fields 0..n-1, then buttons 0..m-1, wrapping.
func (f *Form) stops() int { return len(f.fields) + len(f.buttons) }

func (f *Form) position() int {
	if f.focusedIndex >= 0 {
		return f.focusedIndex
	}
	return len(f.fields) + f.focusedButton
}

func (f *Form) moveTo(pos int) tea.Cmd {
	if f.focusedIndex >= 0 && f.focusedIndex < len(f.fields) {
		f.fields[f.focusedIndex].Blur()
	}
	if pos < len(f.fields) {
		f.focusedIndex = pos
		return f.fields[pos].Focus()
	}
	f.focusedIndex = -1
	f.focusedButton = pos - len(f.fields)
	return nil
}

func (f *Form) next() tea.Cmd {
	n := f.stops()
	if n == 0 {
		return nil
	}
	return f.moveTo((f.position() + 1) % n)
}

func (f *Form) prev() tea.Cmd {
	n := f.stops()
	if n == 0 {
		return nil
	}
	return f.moveTo((f.position() - 1 + n) % n)
}

func (f *Form) focusButton(i int) {
	f.moveTo(len(f.fields) + i)
}

// FocusedIndex returns the focused field index, or -1 when the button row
// has focus.
func (f *Form) FocusedIndex() int { return f.focusedIndex }

// FocusedButton returns the button that has focus while FocusedIndex is -1.
func (f *Form) FocusedButton() int { return f.focusedButton }

// Render draws the form.
func (f *Form) Render() string {
	return f.view.Render()
}

func (f *Form) renderBody() string {
	var parts []string
	if f.title != "" {
		parts = append(parts, styles.OverlayTitle.Render(f.title), "")
	}

	for i, fl := range f.fields {
		title := fl.Label()
		if title == "" {
			title = fl.Name()
		}
		focused := i == f.focusedIndex
		parts = append(parts, styles.RenderFormSection(
			[]string{" " + fl.Render()},
			title,
			fl.Hint(),
			f.width,
			focused,
			styles.BorderHighlightFocusColor,
		))
	}

	if f.err != nil {
		parts = append(parts, styles.ErrorStyle.Render("✗ "+f.err.Error()))
	}

	if len(f.buttons) > 0 {
		items := make([]button.Item, len(f.buttons))
		for i, b := range f.buttons {
			items[i] = button.Item{Title: b.Title, Class: b.Class}
		}
		focused := -1
		if f.focusedIndex < 0 {
			focused = f.focusedButton
		}
		parts = append(parts, "", button.Row(f.ID(), items, focused))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Unmount detaches the form and drops its button callbacks. Field values
// stay readable through Data. Safe to call repeatedly.
func (f *Form) Unmount() {
	if f.released {
		return
	}
	f.view.Unmount()
	f.released = true
	f.buttons = nil
	log.Debug(log.CatForm, "form unmounted", "title", f.title)
}

// Release implements view.Releaser so a form can be owned by another view.
func (f *Form) Release() { f.Unmount() }
