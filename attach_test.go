package reel

import (
	"math"
	"testing"
)

func TestAttachDoesNotMutateSource(t *testing.T) {
	def := NewAnimation("shared")
	def.AddRotation(math.Pi, Linear, 0, 1.0)

	n1 := NewBaseNode("a")
	n2 := NewBaseNode("b")
	t1 := NewTimeline("t1", n1)
	t2 := NewTimeline("t2", n2)
	t1.Attach(def, 0)
	t2.Attach(def, 0)

	t1.Start()
	t1.Elapse(0.5)

	if got := def.Motions()[0].Amounts()[0].Current; got != 0 {
		t.Errorf("source amount = %f, want construction default 0", got)
	}
	if n2.Rotation != 0 {
		t.Errorf("second timeline's node moved: rotation = %f", n2.Rotation)
	}
	if math.Abs(n1.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("first timeline's node rotation = %f, want pi/2", n1.Rotation)
	}
}

func TestRevertRestoresFromSource(t *testing.T) {
	def := NewAnimation("rev")
	def.AddRotation(1.0, Linear, 0, 1.0)

	tl := NewTimeline("t", NewBaseNode("n"))
	att := tl.Attach(def, 0)
	tl.Start()
	tl.Elapse(0.5)

	if att.Animation().Motions()[0].Amounts()[0].Current == 0 {
		t.Fatal("working copy should have progressed")
	}
	att.Revert()
	if got := att.Animation().Motions()[0].Amounts()[0].Current; got != 0 {
		t.Errorf("working amount after revert = %f, want 0", got)
	}
}

func TestRevertOnReleasedSourceIsNoop(t *testing.T) {
	m := NewManager()
	def := m.NewAnimation("gone")
	def.AddRotation(1.0, Linear, 0, 1.0)

	tl := NewTimeline("t", NewBaseNode("n"))
	att := tl.Attach(def, 0)
	tl.Start()
	tl.Elapse(0.5)
	progressed := att.Animation().Motions()[0].Amounts()[0].Current

	m.RemoveAnimation("gone")
	att.Revert()
	if got := att.Animation().Motions()[0].Amounts()[0].Current; got != progressed {
		t.Errorf("revert on released source changed state: %f -> %f", progressed, got)
	}
	// A second Revert after the watch reference is dropped stays a no-op.
	att.Revert()
}

func TestSetStartTimeRefreshesOwner(t *testing.T) {
	def := NewAnimation("move")
	def.AddRotation(1.0, Linear, 0, 1.0)

	tl := NewTimeline("t", NewBaseNode("n"))
	att := tl.Attach(def, 0)
	if tl.Duration() != 1.0 {
		t.Fatalf("duration = %f, want 1.0", tl.Duration())
	}
	att.SetStartTime(2.5)
	if tl.Duration() != 3.5 {
		t.Errorf("duration after SetStartTime = %f, want 3.5", tl.Duration())
	}
}

func TestDisabledAttachmentSkippedButCounted(t *testing.T) {
	def := NewAnimation("dis")
	def.AddRotation(1.0, Linear, 0, 2.0)

	node := NewBaseNode("n")
	tl := NewTimeline("t", node)
	att := tl.Attach(def, 0)
	att.SetEnabled(false)

	if tl.Duration() != 2.0 {
		t.Errorf("disabled attachment should still count toward duration, got %f", tl.Duration())
	}
	tl.Start()
	tl.Elapse(1.0)
	if node.Rotation != 0 {
		t.Errorf("disabled attachment moved the node: %f", node.Rotation)
	}
}

func TestGroupRevertRestoresEveryAnimation(t *testing.T) {
	def := NewAnimationGroup("g")
	a := NewAnimation("a")
	a.AddRotation(1.0, Linear, 0, 1.0)
	def.Add(a, 0, true)

	tl := NewTimeline("t", NewBaseNode("n"))
	att := tl.AttachGroup(def, 0)
	tl.Start()
	tl.Elapse(0.5)

	inner := att.Group().Animations()[0]
	if inner.Animation().Motions()[0].Amounts()[0].Current == 0 {
		t.Fatal("group working copy should have progressed")
	}
	att.Revert()
	inner = att.Group().Animations()[0]
	if got := inner.Animation().Motions()[0].Amounts()[0].Current; got != 0 {
		t.Errorf("group amount after revert = %f, want 0", got)
	}
}
