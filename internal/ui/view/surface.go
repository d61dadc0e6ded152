package view

import (
	"fmt"
	"strings"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/overlay"
)

type attachment struct {
	id   string
	node Node
}

// Surface is the terminal-backed Container: inline nodes are stacked
// vertically in attach order and nodes that implement Placer are drawn on
// top of them, later attachments above earlier ones.
//
// A Surface is owned by the program that created it. It is not safe for
// concurrent use; bubbletea drives it from a single goroutine.
type Surface struct {
	width  int
	height int
	nodes  []attachment
}

// NewSurface returns an empty surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// SetSize resizes the surface.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the surface size.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Attach implements Container.
func (s *Surface) Attach(id string, n Node) error {
	if s.index(id) >= 0 {
		return fmt.Errorf("%w: %s", ErrOverlappingMount, id)
	}
	s.nodes = append(s.nodes, attachment{id: id, node: n})
	return nil
}

// Detach implements Container. Unknown ids are ignored.
func (s *Surface) Detach(id string) {
	if i := s.index(id); i >= 0 {
		s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	}
}

// Len reports the number of attached nodes.
func (s *Surface) Len() int { return len(s.nodes) }

// Has reports whether a node is attached under id.
func (s *Surface) Has(id string) bool { return s.index(id) >= 0 }

func (s *Surface) index(id string) int {
	for i, a := range s.nodes {
		if a.id == id {
			return i
		}
	}
	return -1
}

// Render draws the inline nodes, then composites every floating node at the
// origin it asks for. A surface without a size renders inline content only.
func (s *Surface) Render() string {
	var inline []string
	type floating struct {
		block string
		x, y  int
	}
	var floats []floating

	for _, a := range s.nodes {
		if p, ok := a.node.(Placer); ok {
			if x, y, ok := p.Place(s.width, s.height); ok {
				floats = append(floats, floating{block: a.node.Render(), x: x, y: y})
				continue
			}
		}
		if out := a.node.Render(); out != "" {
			inline = append(inline, out)
		}
	}

	frame := strings.Join(inline, "\n")
	if s.width <= 0 || s.height <= 0 {
		if len(floats) > 0 {
			log.Warn(log.CatUI, "surface has no size, floating nodes skipped", "count", len(floats))
		}
		return frame
	}

	for _, f := range floats {
		frame = overlay.Place(frame, f.block, f.x, f.y, s.width, s.height)
	}
	return frame
}
