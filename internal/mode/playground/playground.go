// Package playground is the interactive "create your own modal" page: a form
// whose snapshot configures and opens a modal.
package playground

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/field"
	"github.com/zjrosen/spark/internal/ui/form"
	"github.com/zjrosen/spark/internal/ui/modal"
	"github.com/zjrosen/spark/internal/ui/shared/logoverlay"
	"github.com/zjrosen/spark/internal/ui/styles"
	"github.com/zjrosen/spark/internal/ui/view"
)

const (
	header       = "Create your own modal"
	helpText     = "tab/shift+tab move  enter select  ←/→ choose  ctrl+x logs  ctrl+c quit"
	maxFormWidth = 72
)

// DefaultSpecs is the field list of the playground form.
func DefaultSpecs() []field.Spec {
	return []field.Spec{
		{
			Type:        field.TypeText,
			Name:        "title",
			Label:       "Modal title",
			Placeholder: "What is your modal title...",
		},
		{
			Type:        field.TypeText,
			Name:        "content",
			Label:       "Modal content",
			Placeholder: "Tell me your modal content...",
		},
		{
			Type:  field.TypeCombobox,
			Name:  "buttons",
			Label: "Button set",
			Items: []field.Item{
				{Title: "Yes", Value: modal.ButtonsYes},
				{Title: "No", Value: modal.ButtonsNo},
				{Title: "Yes/No", Value: modal.ButtonsYesNo},
				{Title: "Yes/No/Cancel", Value: modal.ButtonsYesNoCancel},
			},
			SelectedValue: modal.ButtonsYesNo,
		},
		{Type: field.TypeCheckbox, Name: "draggable", Label: "Is draggable", Checked: true},
		{Type: field.TypeCheckbox, Name: "closable", Label: "Is closable", Checked: true},
		{Type: field.TypeCheckbox, Name: "removeOnOverlayClick", Label: "Is removable when overlay clicked", Checked: true},
	}
}

// Config configures the playground.
type Config struct {
	// Specs replaces DefaultSpecs when non-empty.
	Specs  []field.Spec
	Width  int
	Height int
}

// ThemeMsg asks the playground to switch to a reloaded theme.
type ThemeMsg struct {
	Theme styles.ThemeConfig
}

// Model holds the playground state.
type Model struct {
	surface *view.Surface
	header  *view.View
	form    *form.Form
	footer  *view.View
	modal   *modal.Modal
	logs    logoverlay.Model

	status   string
	quitting bool
}

// New mounts the header, the form and the footer on a fresh surface.
func New(cfg Config) (*Model, error) {
	specs := cfg.Specs
	if len(specs) == 0 {
		specs = DefaultSpecs()
	}

	m := &Model{
		surface: view.NewSurface(cfg.Width, cfg.Height),
		logs:    logoverlay.New(cfg.Width, cfg.Height),
	}

	h, err := view.New(view.Config{TagName: "h3", Template: header, RenderTo: m.surface})
	if err != nil {
		return nil, err
	}
	if err := h.Mount(); err != nil {
		return nil, err
	}
	m.header = h

	f, err := form.New(form.Config{
		Inputs: specs,
		Buttons: []form.Button{
			{Title: "Show Modal", Class: "blue small dark", Callback: m.showModal},
		},
		RenderTo: m.surface,
	})
	if err != nil {
		h.Unmount()
		return nil, fmt.Errorf("building playground form: %w", err)
	}
	m.form = f
	if cfg.Width > 0 {
		f.SetWidth(min(cfg.Width-2, maxFormWidth))
	}

	footer, err := view.New(view.Config{TagName: "small", RenderTo: m.surface})
	if err != nil {
		return nil, err
	}
	footer.Append(view.NodeFunc(m.renderStatus))
	if err := footer.Mount(); err != nil {
		return nil, err
	}
	m.footer = footer

	log.Info(log.CatMode, "playground ready", "fields", len(specs))
	return m, nil
}

// Form returns the playground form.
func (m *Model) Form() *form.Form { return m.form }

// Modal returns the open modal, or nil.
func (m *Model) Modal() *modal.Modal {
	if m.modal == nil || m.modal.State() != modal.StateOpen {
		return nil
	}
	return m.modal
}

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// showModal is the "Show Modal" callback.
func (m *Model) showModal(f *form.Form) tea.Cmd {
	if m.Modal() != nil {
		return nil
	}
	md, err := modal.FromData(f.Data(), m.surface)
	if err != nil {
		log.ErrorErr(log.CatMode, "building modal failed", err)
		m.status = err.Error()
		return nil
	}
	if err := md.Open(); err != nil {
		log.ErrorErr(log.CatMode, "opening modal failed", err)
		m.status = err.Error()
		return nil
	}
	m.modal = md
	m.status = ""
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Input goes to the log overlay when it is
// shown, then to an open modal, then to the form.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.SetSize(msg.Width, msg.Height)
		m.form.SetWidth(min(msg.Width-2, maxFormWidth))
		m.logs.SetSize(msg.Width, msg.Height)
		return m, nil

	case modal.ClosedMsg:
		m.status = "Modal closed: " + msg.Result.String()
		if m.modal != nil && m.modal.ID() == msg.ID {
			m.modal = nil
		}
		log.Debug(log.CatMode, "modal result", "id", msg.ID, "result", msg.Result)
		return m, nil

	case logoverlay.CloseMsg:
		return m, nil

	case ThemeMsg:
		if err := styles.ApplyTheme(msg.Theme); err != nil {
			log.ErrorErr(log.CatMode, "applying reloaded theme failed", err)
			m.status = err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.shutdown()
			return m, tea.Quit
		}
		if m.logs.Visible() {
			var cmd tea.Cmd
			m.logs, cmd = m.logs.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyCtrlX {
			m.logs.Show()
			return m, nil
		}
	}

	if m.logs.Visible() {
		return m, nil
	}
	if md := m.Modal(); md != nil {
		return m, md.Update(msg)
	}
	return m, m.form.Update(msg)
}

// shutdown detaches everything the playground mounted.
func (m *Model) shutdown() {
	if md := m.Modal(); md != nil {
		md.Release()
	}
	m.footer.Unmount()
	m.form.Unmount()
	m.header.Unmount()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	out := m.logs.Overlay(m.surface.Render())
	if zone.DefaultManager == nil {
		return out
	}
	return zone.Scan(out)
}

func (m *Model) renderStatus() string {
	help := styles.MutedStyle.Render(helpText)
	if m.status == "" {
		return "\n" + help
	}
	return "\n" + m.status + "\n" + help
}
