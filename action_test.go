package reel

import "testing"

func TestUserActionEdgeTriggered(t *testing.T) {
	var forward, backward int
	anim := NewAnimation("edge")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddUserAction(0.5, nil,
		func(*Animation, any) { forward++ },
		func(*Animation, any) { backward++ })
	node := NewBaseNode("n")

	// Crossing 0.4 -> 0.6 fires exactly once.
	anim.Elapse(node, 0.4, 0.4, 0)
	anim.Elapse(node, 0.2, 0.6, 0)
	if forward != 1 {
		t.Fatalf("forward fires = %d, want 1", forward)
	}

	// Staying past the point does not re-fire.
	anim.Elapse(node, 0.2, 0.8, 0)
	if forward != 1 {
		t.Errorf("forward fires after further ticks = %d, want 1", forward)
	}

	// Crossing back 0.8 -> 0.4 fires the opposite exactly once.
	anim.Elapse(node, -0.4, 0.4, 0)
	if backward != 1 {
		t.Fatalf("backward fires = %d, want 1", backward)
	}
	anim.Elapse(node, -0.2, 0.2, 0)
	if backward != 1 {
		t.Errorf("backward fires after further ticks = %d, want 1", backward)
	}

	// Re-crossing forward fires again.
	anim.Elapse(node, 0.4, 0.6, 0)
	if forward != 2 {
		t.Errorf("forward fires after re-cross = %d, want 2", forward)
	}
}

func TestUserActionOppositeFallsBackToExecute(t *testing.T) {
	var calls int
	anim := NewAnimation("fallback")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddUserAction(0.5, nil, func(*Animation, any) { calls++ }, nil)
	node := NewBaseNode("n")

	anim.Elapse(node, 0.6, 0.6, 0)
	anim.Elapse(node, -0.2, 0.4, 0)
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (forward + fallback backward)", calls)
	}
}

func TestUserActionCarriesData(t *testing.T) {
	var got any
	anim := NewAnimation("data")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddUserAction(0.5, "payload", func(_ *Animation, data any) { got = data }, nil)

	anim.Elapse(nil, 0.6, 0.6, 0)
	if got != "payload" {
		t.Errorf("data = %v, want payload", got)
	}
}

func TestNodeActionsMutateNode(t *testing.T) {
	anim := NewAnimation("vis")
	anim.AddRotation(1.0, Linear, 0, 2.0)
	anim.AddAction(ActionHide, 0.5)
	anim.AddAction(ActionDisinheritRotation, 1.0)
	anim.AddAction(ActionShow, 1.5)
	node := NewBaseNode("n")

	anim.Elapse(node, 0.6, 0.6, 0)
	if node.Visible {
		t.Error("node should be hidden after ActionHide")
	}
	anim.Elapse(node, 0.5, 1.1, 0)
	if node.InheritsRotation {
		t.Error("node should not inherit rotation")
	}
	anim.Elapse(node, 0.5, 1.6, 0)
	if !node.Visible {
		t.Error("node should be visible after ActionShow")
	}
}

func TestNodeActionReverseRunsOpposite(t *testing.T) {
	anim := NewAnimation("undo")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddAction(ActionHide, 0.5)
	node := NewBaseNode("n")

	anim.Elapse(node, 0.6, 0.6, 0)
	if node.Visible {
		t.Fatal("node should be hidden going forward")
	}
	anim.Elapse(node, -0.2, 0.4, 0)
	if !node.Visible {
		t.Error("reverse crossing should show the node again")
	}
}

func TestCascadingActionReachesDescendants(t *testing.T) {
	anim := NewAnimation("cascade")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddAction(ActionHideCascading, 0.5)

	root := NewBaseNode("root")
	child := NewBaseNode("child")
	grandchild := NewBaseNode("grandchild")
	root.AddChild(child)
	child.AddChild(grandchild)

	anim.Elapse(root, 0.6, 0.6, 0)
	if root.Visible || child.Visible || grandchild.Visible {
		t.Error("cascading hide should reach every descendant")
	}
}

func TestActionAtTimeZeroFiresOnFirstTick(t *testing.T) {
	var fired int
	anim := NewAnimation("zero")
	anim.AddRotation(1.0, Linear, 0, 1.0)
	anim.AddUserAction(0, nil, func(*Animation, any) { fired++ }, nil)

	anim.Elapse(nil, 0.1, 0.1, 0)
	if fired != 1 {
		t.Errorf("fires = %d, want 1", fired)
	}
}

func TestActionKindOpposites(t *testing.T) {
	pairs := map[ActionKind]ActionKind{
		ActionShow:           ActionHide,
		ActionHide:           ActionShow,
		ActionShowCascading:  ActionHideCascading,
		ActionInheritScaling: ActionDisinheritScaling,
		ActionFlipVisibility: ActionFlipVisibility,
		ActionUser:           ActionUser,
	}
	for kind, want := range pairs {
		if got := kind.opposite(); got != want {
			t.Errorf("opposite(%d) = %d, want %d", kind, got, want)
		}
	}
}
