package view

// Node is anything that can draw itself into a block of terminal text.
type Node interface {
	Render() string
}

// NodeFunc adapts a plain function to Node.
type NodeFunc func() string

// Render calls f.
func (f NodeFunc) Render() string { return f() }

// Releaser is implemented by children holding resources that must be
// dropped when their owning view is unmounted.
type Releaser interface {
	Release()
}

// Placer is implemented by nodes that can float over the inline content of a
// surface. ok=false means the node is laid out inline.
type Placer interface {
	Place(surfaceW, surfaceH int) (x, y int, ok bool)
}

// Container is an externally owned rendering target. Components attach to it
// when mounted and detach when unmounted; they never create or destroy it.
type Container interface {
	Attach(id string, n Node) error
	Detach(id string)
}
