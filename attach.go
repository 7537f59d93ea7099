package reel

// refresher is implemented by attachment owners (Timeline,
// AnimationGroup) whose derived total duration must be recomputed
// after a structural change.
type refresher interface {
	Refresh()
}

// AttachableAnimation is an owned instance of an [Animation]
// definition on a Timeline or inside an AnimationGroup. Attaching
// makes a private working copy, so playback never mutates the shared
// definition; Revert restores the copy from the definition,
// discarding all progress.
//
// The reference back to the definition is a watch, not ownership:
// once the definition's manager releases it, Revert becomes a no-op.
type AttachableAnimation struct {
	source  *Animation
	working *Animation
	start   float64
	enabled bool
	owner   refresher
}

func newAttachableAnimation(src *Animation, start float64, enabled bool, owner refresher) *AttachableAnimation {
	a := &AttachableAnimation{source: src, start: start, enabled: enabled, owner: owner}
	if src != nil {
		a.working = src.clone()
	}
	return a
}

// Animation returns the private working copy, or nil when detached.
func (a *AttachableAnimation) Animation() *Animation {
	return a.working
}

// StartTime returns the attachment's offset on its owner's clock.
func (a *AttachableAnimation) StartTime() float64 {
	return a.start
}

// SetStartTime moves the attachment and tells the owner to recompute
// its derived duration.
func (a *AttachableAnimation) SetStartTime(t float64) {
	a.start = t
	if a.owner != nil {
		a.owner.Refresh()
	}
}

// Enabled reports whether the attachment participates in playback.
func (a *AttachableAnimation) Enabled() bool {
	return a.enabled
}

// SetEnabled includes or excludes the attachment from playback. A
// disabled attachment keeps its state and still counts toward the
// owner's total duration.
func (a *AttachableAnimation) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// Duration returns the working copy's total duration, or 0 when
// detached.
func (a *AttachableAnimation) Duration() float64 {
	if a.working == nil {
		return 0
	}
	return a.working.Duration()
}

// Elapse advances the working copy. base is the accumulated offset of
// enclosing containers; the attachment's own start time is added on
// top.
func (a *AttachableAnimation) Elapse(node Node, dt, cur, base float64) {
	if a.working == nil {
		return
	}
	a.working.Elapse(node, dt, cur, base+a.start)
}

// Reset returns the working copy to its construction defaults.
func (a *AttachableAnimation) Reset() {
	if a.working != nil {
		a.working.Reset()
	}
}

// Revert re-copies the working state from the source definition,
// discarding all progress. If the definition has been released by its
// manager, the watch reference is dropped and Revert is a no-op.
func (a *AttachableAnimation) Revert() {
	if a.source == nil {
		return
	}
	if a.source.released {
		a.source = nil
		return
	}
	a.working = a.source.clone()
}

// clone deep-copies the attachment for group copy-on-attach. The new
// attachment watches the same source definition but carries its own
// working state and owner.
func (a *AttachableAnimation) clone(owner refresher) *AttachableAnimation {
	c := &AttachableAnimation{source: a.source, start: a.start, enabled: a.enabled, owner: owner}
	if a.working != nil {
		c.working = a.working.clone()
	}
	return c
}

// AttachableAnimationGroup is an owned instance of an
// [AnimationGroup] definition on a Timeline, with the same
// copy-on-attach, watch-reference, and revert semantics as
// [AttachableAnimation].
type AttachableAnimationGroup struct {
	source  *AnimationGroup
	working *AnimationGroup
	start   float64
	enabled bool
	owner   refresher
}

func newAttachableAnimationGroup(src *AnimationGroup, start float64, enabled bool, owner refresher) *AttachableAnimationGroup {
	g := &AttachableAnimationGroup{source: src, start: start, enabled: enabled, owner: owner}
	if src != nil {
		g.working = src.clone()
		g.working.owner = owner
	}
	return g
}

// Group returns the private working copy, or nil when detached.
func (g *AttachableAnimationGroup) Group() *AnimationGroup {
	return g.working
}

// StartTime returns the attachment's offset on its owner's clock.
func (g *AttachableAnimationGroup) StartTime() float64 {
	return g.start
}

// SetStartTime moves the attachment and tells the owner to recompute
// its derived duration.
func (g *AttachableAnimationGroup) SetStartTime(t float64) {
	g.start = t
	if g.owner != nil {
		g.owner.Refresh()
	}
}

// Enabled reports whether the attachment participates in playback.
func (g *AttachableAnimationGroup) Enabled() bool {
	return g.enabled
}

// SetEnabled includes or excludes the attachment from playback.
func (g *AttachableAnimationGroup) SetEnabled(enabled bool) {
	g.enabled = enabled
}

// Duration returns the working copy's aggregate duration, or 0 when
// detached.
func (g *AttachableAnimationGroup) Duration() float64 {
	if g.working == nil {
		return 0
	}
	return g.working.Duration()
}

// Elapse advances the working copy with this attachment's offset
// composed onto base.
func (g *AttachableAnimationGroup) Elapse(node Node, dt, cur, base float64) {
	if g.working == nil {
		return
	}
	g.working.Elapse(node, dt, cur, base+g.start)
}

// Reset returns every animation in the working copy to its
// construction defaults.
func (g *AttachableAnimationGroup) Reset() {
	if g.working != nil {
		g.working.Reset()
	}
}

// Revert re-copies the working state from the source definition. A
// released definition drops the watch reference and makes Revert a
// no-op.
func (g *AttachableAnimationGroup) Revert() {
	if g.source == nil {
		return
	}
	if g.source.released {
		g.source = nil
		return
	}
	g.working = g.source.clone()
	g.working.owner = g.owner
}
