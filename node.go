package reel

// Node is the scene-node mutation surface the engine drives. Every
// transform method receives a delta, never an absolute value, so
// timeline playback composes with independent manipulation of the
// same node between frames.
//
// The engine never reads from a Node; it only pushes changes out.
// Wrap your renderer's scene node in this interface (or use
// [BaseNode]) to animate it.
type Node interface {
	Rotate(angle float64)
	ScaleBy(delta Vec2)
	Translate(delta Vec3)
	SetVisible(visible, cascade bool)
	FlipVisible(cascade bool)
	SetInheritRotation(inherit bool)
	SetInheritScaling(inherit bool)
}

// BaseNode is a minimal hierarchical scene node implementing [Node].
// It accumulates the deltas the engine produces and propagates
// cascading visibility to its descendants. Renderers with their own
// node type can embed it or ignore it entirely.
type BaseNode struct {
	Name string

	Parent   *BaseNode
	children []*BaseNode

	Position Vec3
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	Visible          bool
	InheritsRotation bool
	InheritsScaling  bool
}

// NewBaseNode creates a node with identity scale, visible, and both
// inheritance flags set.
func NewBaseNode(name string) *BaseNode {
	return &BaseNode{
		Name:             name,
		ScaleX:           1,
		ScaleY:           1,
		Visible:          true,
		InheritsRotation: true,
		InheritsScaling:  true,
	}
}

// AddChild appends child to this node's children. If child already has
// a parent, it is removed from that parent first. Panics if child is
// nil or is an ancestor of this node (cycle).
func (n *BaseNode) AddChild(child *BaseNode) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("reel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node. Panics if child's parent
// is not this node.
func (n *BaseNode) RemoveChild(child *BaseNode) {
	if child.Parent != n {
		panic("reel: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be
// mutated by the caller.
func (n *BaseNode) Children() []*BaseNode {
	return n.children
}

// Rotate adds angle (radians) to the node's rotation.
func (n *BaseNode) Rotate(angle float64) {
	n.Rotation += angle
}

// ScaleBy adds the delta to the node's scale factors.
func (n *BaseNode) ScaleBy(delta Vec2) {
	n.ScaleX += delta.X
	n.ScaleY += delta.Y
}

// Translate adds the delta to the node's position.
func (n *BaseNode) Translate(delta Vec3) {
	n.Position = n.Position.Add(delta)
}

// SetVisible sets the node's visibility, cascading to all descendants
// when cascade is true.
func (n *BaseNode) SetVisible(visible, cascade bool) {
	n.Visible = visible
	if cascade {
		for _, child := range n.children {
			child.SetVisible(visible, true)
		}
	}
}

// FlipVisible inverts the node's visibility. With cascade, every
// descendant's visibility is inverted individually.
func (n *BaseNode) FlipVisible(cascade bool) {
	n.Visible = !n.Visible
	if cascade {
		for _, child := range n.children {
			child.FlipVisible(true)
		}
	}
}

// SetInheritRotation toggles whether the node follows its parent's
// rotation.
func (n *BaseNode) SetInheritRotation(inherit bool) {
	n.InheritsRotation = inherit
}

// SetInheritScaling toggles whether the node follows its parent's
// scaling.
func (n *BaseNode) SetInheritScaling(inherit bool) {
	n.InheritsScaling = inherit
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *BaseNode) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in
// the backing array.
func (n *BaseNode) removeChildByPtr(child *BaseNode) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
