// Package modal implements a dialog that floats over a surface, resolves
// its buttons from a preset table or explicit specs, and moves through the
// states Unmounted, Open and Closed exactly once.
package modal

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/button"
	"github.com/zjrosen/spark/internal/ui/markdown"
	"github.com/zjrosen/spark/internal/ui/overlay"
	"github.com/zjrosen/spark/internal/ui/styles"
	"github.com/zjrosen/spark/internal/ui/view"
)

const (
	defaultWidth = 50
	minWidth     = 20
	closeMarker  = "×"
)

// State is a modal lifecycle state.
type State int

const (
	StateUnmounted State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Button is an explicit button, used verbatim instead of a preset.
type Button struct {
	Title string
	Class string
	// Callback runs once per activation. It may call m.Close itself.
	Callback func(m *Modal) tea.Cmd
}

// Config describes a modal.
type Config struct {
	Title string
	// Content is drawn in the body. Strings are word wrapped (or rendered
	// as markdown when Markdown is set), maps are listed as sorted
	// "key: value" lines and anything else is printed with fmt.
	Content  any
	Markdown bool

	// Buttons selects a preset button row. Ignored when ButtonSpecs is set.
	Buttons     ButtonSet
	ButtonSpecs []Button

	Draggable bool
	// Closable enables Esc, the title close marker and overlay dismissal.
	Closable bool
	// RemoveOnOverlayClick closes the modal on a click outside its body.
	// It has no effect unless Closable is set.
	RemoveOnOverlayClick bool

	// Width is the outer width of the box; 0 selects the default.
	Width int

	// OnResult runs after a preset button or a dismissal closed the modal.
	OnResult func(m *Modal, r Result) tea.Cmd

	RenderTo view.Container
}

// ClosedMsg is emitted when a modal closes through user interaction.
type ClosedMsg struct {
	ID     string
	Result Result
}

type binding struct {
	title    string
	class    string
	preset   bool
	result   Result
	callback func(*Modal) tea.Cmd
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Modal is a floating dialog. It is driven from the bubbletea event loop and
// is not safe for concurrent use.
type Modal struct {
	view     *view.View
	cfg      Config
	buttons  []binding
	onResult func(*Modal, Result) tea.Cmd

	state   State
	result  Result
	focused int

	// geometry of the last placement, used for hit testing
	box    rect
	placed bool

	offsetX, offsetY int
	dragging         bool
	dragX, dragY     int
}

// New validates cfg and resolves the buttons. The modal is not mounted
// until Open.
func New(cfg Config) (*Modal, error) {
	var buttons []binding
	if len(cfg.ButtonSpecs) > 0 {
		for _, b := range cfg.ButtonSpecs {
			buttons = append(buttons, binding{title: b.Title, class: b.Class, callback: b.Callback})
		}
	} else if cfg.Buttons != 0 {
		resolved, err := Resolve(cfg.Buttons)
		if err != nil {
			return nil, err
		}
		for _, p := range resolved {
			buttons = append(buttons, binding{title: p.Title, class: p.Class, preset: true, result: p.Result})
		}
	}

	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	cfg.Width = max(cfg.Width, minWidth)

	m := &Modal{cfg: cfg, buttons: buttons, onResult: cfg.OnResult}
	v, err := view.New(view.Config{TagName: "modal", RenderTo: cfg.RenderTo, Placement: m.placement})
	if err != nil {
		return nil, err
	}
	v.Append(view.NodeFunc(m.renderBox))
	m.view = v
	return m, nil
}

// ID returns the id the modal attaches under.
func (m *Modal) ID() string { return m.view.ID() }

// State returns the lifecycle state.
func (m *Modal) State() State { return m.state }

// Result returns the outcome the modal closed with. ok is false while no
// preset button or dismissal has closed it.
func (m *Modal) Result() (r Result, ok bool) {
	return m.result, m.result != ResultNone
}

// Buttons returns the titles of the resolved button row.
func (m *Modal) Buttons() []string {
	out := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b.title
	}
	return out
}

// Focused returns the index of the focused button.
func (m *Modal) Focused() int { return m.focused }

// Config returns the configuration the modal was built from.
func (m *Modal) Config() Config { return m.cfg }

// Open mounts the modal. Only an unmounted modal can be opened.
func (m *Modal) Open() error {
	if m.state != StateUnmounted {
		return &InvalidStateError{Op: "open", State: m.state}
	}
	if err := m.view.Mount(); err != nil {
		return err
	}
	m.state = StateOpen
	log.Info(log.CatModal, "modal opened", "id", m.ID(), "title", m.cfg.Title, "buttons", len(m.buttons))
	return nil
}

// Close unmounts an open modal and releases its button bindings and
// OnResult. Closed is terminal; a modal cannot be reopened.
func (m *Modal) Close() error {
	if m.state != StateOpen {
		return &InvalidStateError{Op: "close", State: m.state}
	}
	m.view.Unmount()
	m.state = StateClosed
	m.buttons = nil
	m.onResult = nil
	m.dragging = false
	log.Info(log.CatModal, "modal closed", "id", m.ID(), "result", m.result)
	return nil
}

// Press activates button i of an open modal. Preset buttons close the modal
// and record their result before OnResult runs; explicit buttons only run
// their callback.
func (m *Modal) Press(i int) (tea.Cmd, error) {
	if m.state != StateOpen {
		return nil, &InvalidStateError{Op: "press a button", State: m.state}
	}
	if i < 0 || i >= len(m.buttons) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchButton, i)
	}

	b := m.buttons[i]
	log.Debug(log.CatModal, "button pressed", "id", m.ID(), "button", b.title)
	if b.preset {
		return m.finish(b.result)
	}
	if b.callback == nil {
		return nil, nil
	}
	return b.callback(m), nil
}

// ClickOverlay handles a click outside the modal body. The modal closes with
// ResultDismissed only when both Closable and RemoveOnOverlayClick are set;
// otherwise it stays open.
func (m *Modal) ClickOverlay() (tea.Cmd, error) {
	if m.state != StateOpen {
		return nil, &InvalidStateError{Op: "handle an overlay click", State: m.state}
	}
	if !m.cfg.Closable || !m.cfg.RemoveOnOverlayClick {
		log.Debug(log.CatModal, "overlay click ignored", "id", m.ID())
		return nil, nil
	}
	return m.finish(ResultDismissed)
}

// finish closes the modal with r and then runs OnResult.
func (m *Modal) finish(r Result) (tea.Cmd, error) {
	if m.state != StateOpen {
		return nil, &InvalidStateError{Op: "close", State: m.state}
	}
	cb := m.onResult
	m.result = r
	if err := m.Close(); err != nil {
		return nil, err
	}

	id := m.ID()
	closed := func() tea.Msg { return ClosedMsg{ID: id, Result: r} }
	if cb == nil {
		return closed, nil
	}
	return tea.Batch(cb(m, r), closed), nil
}

// Update handles keys and mouse events while the modal is open.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.state != StateOpen {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Modal) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Dismiss):
		if !m.cfg.Closable {
			return nil
		}
		cmd, _ := m.finish(ResultDismissed)
		return cmd
	case key.Matches(msg, keys.Next):
		if n := len(m.buttons); n > 0 {
			m.focused = (m.focused + 1) % n
		}
	case key.Matches(msg, keys.Prev):
		if n := len(m.buttons); n > 0 {
			m.focused = (m.focused - 1 + n) % n
		}
	case key.Matches(msg, keys.Press):
		cmd, _ := m.Press(m.focused)
		return cmd
	}
	return nil
}

func (m *Modal) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = false
		return nil

	case tea.MouseActionMotion:
		if m.dragging {
			m.offsetX += msg.X - m.dragX
			m.offsetY += msg.Y - m.dragY
			m.dragX, m.dragY = msg.X, msg.Y
		}
		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.placed {
			return nil
		}
		if !m.box.contains(msg.X, msg.Y) {
			cmd, _ := m.ClickOverlay()
			return cmd
		}
		if m.onCloseMarker(msg.X, msg.Y) {
			cmd, _ := m.finish(ResultDismissed)
			return cmd
		}
		if i, ok := button.Hit(m.ID(), len(m.buttons), msg); ok {
			m.focused = i
			cmd, _ := m.Press(i)
			return cmd
		}
		if m.cfg.Draggable && m.onTitleBar(msg.Y) {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	}
	return nil
}

// Dragging reports whether a drag is in progress.
func (m *Modal) Dragging() bool { return m.dragging }

// Bounds returns the box from the last placement. ok is false before the
// modal was first placed on a sized surface.
func (m *Modal) Bounds() (x, y, w, h int, ok bool) {
	return m.box.x, m.box.y, m.box.w, m.box.h, m.placed
}

// The title bar is the top border plus the title row.
func (m *Modal) onTitleBar(y int) bool {
	return y == m.box.y || y == m.box.y+1
}

// The close marker sits in the last content column of the title row.
func (m *Modal) onCloseMarker(x, y int) bool {
	if !m.cfg.Closable || y != m.box.y+1 {
		return false
	}
	col := m.box.x + m.box.w - 3
	return x >= col-1 && x <= col+1
}

// Place implements view.Placer.
func (m *Modal) Place(surfaceW, surfaceH int) (int, int, bool) {
	return m.view.Place(surfaceW, surfaceH)
}

// placement centers the box, applies the drag offset and keeps it on
// screen. The clamped offset is written back so a drag past the edge does
// not have to be undone before the box moves again.
func (m *Modal) placement(surfaceW, surfaceH int) (int, int) {
	w, h := overlay.Size(m.renderBox())
	cx, cy := overlay.Center(surfaceW, surfaceH, w, h)
	x, y := overlay.Clamp(cx+m.offsetX, cy+m.offsetY, surfaceW, surfaceH, w, h)
	m.offsetX, m.offsetY = x-cx, y-cy

	m.box = rect{x: x, y: y, w: w, h: h}
	m.placed = true
	return x, y
}

// Render draws the box.
func (m *Modal) Render() string {
	return m.view.Render()
}

// Release implements view.Releaser so an owning view can tear the modal down.
func (m *Modal) Release() {
	if m.state == StateOpen {
		_ = m.Close()
	}
}

func (m *Modal) renderBox() string {
	inner := m.cfg.Width - 4

	var parts []string
	parts = append(parts, m.renderTitle(inner))

	if body := m.renderContent(inner); body != "" {
		parts = append(parts, "", body)
	}

	if len(m.buttons) > 0 {
		items := make([]button.Item, len(m.buttons))
		for i, b := range m.buttons {
			items[i] = button.Item{Title: b.title, Class: b.class}
		}
		parts = append(parts, "", button.Row(m.ID(), items, m.focused))
	}

	box := styles.OverlayBox
	if m.dragging {
		box = styles.OverlayFocus
	}
	return box.Width(m.cfg.Width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Modal) renderTitle(inner int) string {
	marker := ""
	if m.cfg.Closable {
		marker = closeMarker
	}
	room := inner - ansi.StringWidth(marker)
	if marker != "" {
		room--
	}
	title := ansi.Truncate(m.cfg.Title, max(room, 0), "…")
	pad := inner - ansi.StringWidth(title) - ansi.StringWidth(marker)
	return styles.OverlayTitle.Render(title) + strings.Repeat(" ", max(pad, 0)) + styles.MutedStyle.Render(marker)
}

func (m *Modal) renderContent(width int) string {
	switch c := m.cfg.Content.(type) {
	case nil:
		return ""
	case string:
		if c == "" {
			return ""
		}
		c = normalizeNewlines(c)
		if m.cfg.Markdown {
			out, err := markdown.Render(c, width)
			if err == nil {
				return out
			}
			log.ErrorErr(log.CatModal, "markdown content fell back to plain text", err, "id", m.ID())
		}
		return wordwrap.String(c, width)
	case map[string]any:
		keys := slices.Sorted(maps.Keys(c))
		lines := make([]string, len(keys))
		for i, k := range keys {
			lines[i] = wordwrap.String(fmt.Sprintf("%s: %v", k, c[k]), width)
		}
		return strings.Join(lines, "\n")
	default:
		return wordwrap.String(fmt.Sprint(c), width)
	}
}

// normalizeNewlines converts CRLF and CR line endings to LF so carriage
// returns cannot move the cursor inside the box.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
