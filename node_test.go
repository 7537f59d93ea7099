package reel

import "testing"

func TestBaseNodeDefaults(t *testing.T) {
	n := NewBaseNode("n")
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Error("scale should default to identity")
	}
	if !n.Visible || !n.InheritsRotation || !n.InheritsScaling {
		t.Error("visibility and inheritance should default on")
	}
}

func TestBaseNodeHierarchy(t *testing.T) {
	root := NewBaseNode("root")
	child := NewBaseNode("child")
	root.AddChild(child)
	if child.Parent != root || len(root.Children()) != 1 {
		t.Fatal("AddChild should parent the node")
	}

	// Reparenting removes from the previous parent first.
	other := NewBaseNode("other")
	other.AddChild(child)
	if len(root.Children()) != 0 || child.Parent != other {
		t.Error("adding to a new parent should reparent")
	}

	other.RemoveChild(child)
	if child.Parent != nil || len(other.Children()) != 0 {
		t.Error("RemoveChild should detach the node")
	}
}

func TestBaseNodeCyclePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding an ancestor as a child should panic")
		}
	}()
	a := NewBaseNode("a")
	b := NewBaseNode("b")
	a.AddChild(b)
	b.AddChild(a)
}

func TestBaseNodeAppliesDeltas(t *testing.T) {
	n := NewBaseNode("n")
	n.Rotate(0.5)
	n.Rotate(0.25)
	if n.Rotation != 0.75 {
		t.Errorf("rotation = %f, want 0.75", n.Rotation)
	}
	n.ScaleBy(Vec2{X: 0.5, Y: 1})
	if n.ScaleX != 1.5 || n.ScaleY != 2 {
		t.Errorf("scale = (%f, %f), want (1.5, 2)", n.ScaleX, n.ScaleY)
	}
	n.Translate(Vec3{X: 1, Y: 2, Z: 3})
	n.Translate(Vec3{X: 1})
	if n.Position != (Vec3{X: 2, Y: 2, Z: 3}) {
		t.Errorf("position = %+v", n.Position)
	}
}

func TestBaseNodeVisibilityCascade(t *testing.T) {
	root := NewBaseNode("root")
	child := NewBaseNode("child")
	root.AddChild(child)

	root.SetVisible(false, false)
	if !child.Visible {
		t.Error("non-cascading hide should not touch children")
	}
	root.SetVisible(false, true)
	if child.Visible {
		t.Error("cascading hide should reach children")
	}

	root.FlipVisible(true)
	if !root.Visible || !child.Visible {
		t.Error("cascading flip should invert the subtree")
	}
}
