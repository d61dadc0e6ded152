// Package view is the base unit of spark's component model: a tag and a
// template that mount once into an externally owned Container and own the
// children rendered beneath them.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/styles"
)

// Config describes a view. Options a view does not recognise are simply not
// represented here; callers decoding configs from maps should ignore unknown
// keys.
type Config struct {
	// TagName selects the element style (h1..h6, p, strong, ...). Unknown
	// tags render unstyled.
	TagName string
	// Template is the text drawn for the element itself.
	Template string
	// RenderTo is the container the view mounts into.
	RenderTo Container
	// Placement, when set, floats the view over the inline content. It
	// receives the surface size and returns the top-left origin.
	Placement func(surfaceW, surfaceH int) (x, y int)
}

// View is a mountable element with owned children.
type View struct {
	id       string
	tag      string
	template string
	target   Container
	place    func(w, h int) (int, int)
	children []Node

	mounted   bool
	destroyed bool
}

// New validates cfg and returns an unmounted view.
func New(cfg Config) (*View, error) {
	if cfg.TagName == "" && cfg.Template == "" {
		return nil, ErrMissingTemplate
	}
	if cfg.RenderTo == nil {
		return nil, ErrNoContainer
	}
	return &View{
		id:       uuid.NewString(),
		tag:      cfg.TagName,
		template: cfg.Template,
		target:   cfg.RenderTo,
		place:    cfg.Placement,
	}, nil
}

// ID returns the unique id the view attaches under.
func (v *View) ID() string { return v.id }

// Tag returns the tag name.
func (v *View) Tag() string { return v.tag }

// Mounted reports whether the view is currently attached.
func (v *View) Mounted() bool { return v.mounted }

// Append registers owned children, rendered below the template in order.
func (v *View) Append(children ...Node) {
	v.children = append(v.children, children...)
}

// Mount attaches the view to its container. A view mounts at most once in
// its lifetime; later calls return *AlreadyMountedError.
func (v *View) Mount() error {
	if v.mounted || v.destroyed {
		return &AlreadyMountedError{ID: v.id, Tag: v.tag}
	}
	if err := v.target.Attach(v.id, v); err != nil {
		return err
	}
	v.mounted = true
	log.Debug(log.CatView, "mounted", "id", v.id, "tag", v.tag)
	return nil
}

// Unmount detaches the view and releases its children. Safe to call repeatedly.
func (v *View) Unmount() {
	if v.destroyed {
		return
	}
	if v.mounted {
		v.target.Detach(v.id)
	}
	for _, c := range v.children {
		if r, ok := c.(Releaser); ok {
			r.Release()
		}
	}
	v.children = nil
	v.mounted = false
	v.destroyed = true
	log.Debug(log.CatView, "unmounted", "id", v.id, "tag", v.tag)
}

// Release unmounts the view. It lets views be owned as children of other views.
func (v *View) Release() { v.Unmount() }

// Render draws the styled template followed by the children.
func (v *View) Render() string {
	parts := make([]string, 0, len(v.children)+1)
	if v.template != "" {
		parts = append(parts, styles.Tag(v.tag).Render(v.template))
	}
	for _, c := range v.children {
		if s := c.Render(); s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Place implements Placer.
func (v *View) Place(surfaceW, surfaceH int) (int, int, bool) {
	if v.place == nil {
		return 0, 0, false
	}
	x, y := v.place(surfaceW, surfaceH)
	return x, y, true
}
