package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type releaseCounter struct {
	text     string
	released int
}

func (r *releaseCounter) Render() string { return r.text }
func (r *releaseCounter) Release()       { r.released++ }

func TestNew_RequiresTemplateOrTag(t *testing.T) {
	_, err := New(Config{RenderTo: NewSurface(80, 24)})
	require.ErrorIs(t, err, ErrMissingTemplate)
}

func TestNew_RequiresContainer(t *testing.T) {
	_, err := New(Config{TagName: "h3", Template: "Hello"})
	require.ErrorIs(t, err, ErrNoContainer)
}

func TestNew_UniqueIDs(t *testing.T) {
	s := NewSurface(80, 24)
	a, err := New(Config{TagName: "p", RenderTo: s})
	require.NoError(t, err)
	b, err := New(Config{TagName: "p", RenderTo: s})
	require.NoError(t, err)

	require.NotEmpty(t, a.ID())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestMount_AttachesOnce(t *testing.T) {
	s := NewSurface(80, 24)
	v, err := New(Config{TagName: "h3", Template: "Create your own modal", RenderTo: s})
	require.NoError(t, err)
	require.Equal(t, 0, s.Len(), "construction must not touch the surface")

	require.NoError(t, v.Mount())
	require.True(t, v.Mounted())
	require.True(t, s.Has(v.ID()))

	err = v.Mount()
	var already *AlreadyMountedError
	require.ErrorAs(t, err, &already)
	require.Equal(t, v.ID(), already.ID)
	require.Contains(t, err.Error(), "<h3>")
	require.Equal(t, 1, s.Len())
}

func TestMount_AfterUnmountFails(t *testing.T) {
	s := NewSurface(80, 24)
	v, err := New(Config{Template: "x", RenderTo: s})
	require.NoError(t, err)
	require.NoError(t, v.Mount())
	v.Unmount()

	var already *AlreadyMountedError
	require.ErrorAs(t, v.Mount(), &already)
	require.Equal(t, 0, s.Len())
}

func TestUnmount_ReleasesChildrenIdempotently(t *testing.T) {
	s := NewSurface(80, 24)
	v, err := New(Config{TagName: "div", RenderTo: s})
	require.NoError(t, err)

	child := &releaseCounter{text: "child"}
	v.Append(child, NodeFunc(func() string { return "plain" }))
	require.NoError(t, v.Mount())

	v.Unmount()
	v.Unmount()

	require.Equal(t, 1, child.released)
	require.False(t, v.Mounted())
	require.False(t, s.Has(v.ID()))
}

func TestUnmount_NestedViews(t *testing.T) {
	s := NewSurface(80, 24)
	parent, err := New(Config{TagName: "div", RenderTo: s})
	require.NoError(t, err)
	inner := NewSurface(0, 0)
	child, err := New(Config{TagName: "p", Template: "inner", RenderTo: inner})
	require.NoError(t, err)
	require.NoError(t, child.Mount())

	parent.Append(child)
	require.NoError(t, parent.Mount())
	parent.Unmount()

	require.False(t, child.Mounted())
	require.Equal(t, 0, inner.Len())
}

func TestRender_TemplateThenChildren(t *testing.T) {
	s := NewSurface(80, 24)
	v, err := New(Config{TagName: "h3", Template: "Title", RenderTo: s})
	require.NoError(t, err)
	v.Append(NodeFunc(func() string { return "first" }), NodeFunc(func() string { return "" }), NodeFunc(func() string { return "second" }))

	lines := strings.Split(v.Render(), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Title")
	require.Contains(t, lines[1], "first")
	require.Contains(t, lines[2], "second")
}

func TestRender_UnknownTagIsPlain(t *testing.T) {
	v, err := New(Config{TagName: "marquee", Template: "Hello", RenderTo: NewSurface(10, 1)})
	require.NoError(t, err)
	require.Equal(t, "Hello", v.Render())
}

func TestSurface_RejectsOverlappingMount(t *testing.T) {
	s := NewSurface(80, 24)
	require.NoError(t, s.Attach("a", NodeFunc(func() string { return "a" })))

	err := s.Attach("a", NodeFunc(func() string { return "b" }))
	require.True(t, errors.Is(err, ErrOverlappingMount))
}

func TestSurface_DetachUnknownIsNoop(t *testing.T) {
	s := NewSurface(80, 24)
	s.Detach("missing")
	require.Equal(t, 0, s.Len())
}

func TestSurface_RendersFloatingNodesOnTop(t *testing.T) {
	s := NewSurface(10, 3)
	require.NoError(t, s.Attach("bg", NodeFunc(func() string { return "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc" })))

	float, err := New(Config{
		Template:  "XY",
		RenderTo:  s,
		Placement: func(w, h int) (int, int) { return 4, 1 },
	})
	require.NoError(t, err)
	require.NoError(t, float.Mount())

	require.Equal(t, "aaaaaaaaaa\nbbbbXYbbbb\ncccccccccc", s.Render())
}

func TestSurface_UnsizedSkipsFloatingNodes(t *testing.T) {
	s := NewSurface(0, 0)
	require.NoError(t, s.Attach("bg", NodeFunc(func() string { return "inline" })))
	float, err := New(Config{Template: "float", RenderTo: s, Placement: func(w, h int) (int, int) { return 0, 0 }})
	require.NoError(t, err)
	require.NoError(t, float.Mount())

	require.Equal(t, "inline", s.Render())
}
