package reel

// AnimationGroup bundles animations at relative start offsets under
// one name, so a whole sequence can be defined once and attached to a
// Timeline as a unit. Like [Animation], a group is a shared
// definition: attaching it copies the group and every animation
// inside it.
type AnimationGroup struct {
	Name string

	animations []*AttachableAnimation

	total      float64
	totalDirty bool

	owner    refresher
	released bool
}

// NewAnimationGroup creates an empty group definition.
func NewAnimationGroup(name string) *AnimationGroup {
	return &AnimationGroup{Name: name}
}

// Add attaches a copy of anim at the given offset within the group
// and returns the attachment.
func (g *AnimationGroup) Add(anim *Animation, start float64, enabled bool) *AttachableAnimation {
	att := newAttachableAnimation(anim, start, enabled, g)
	g.animations = append(g.animations, att)
	g.Refresh()
	return att
}

// Remove detaches att from the group. Removing an attachment that
// does not belong to this group is a no-op returning false.
func (g *AnimationGroup) Remove(att *AttachableAnimation) bool {
	for i, a := range g.animations {
		if a == att {
			copy(g.animations[i:], g.animations[i+1:])
			g.animations[len(g.animations)-1] = nil
			g.animations = g.animations[:len(g.animations)-1]
			g.Refresh()
			return true
		}
	}
	return false
}

// Animations returns the group's attachments. The returned slice
// aliases the group's state and MUST NOT be resized by the caller.
func (g *AnimationGroup) Animations() []*AttachableAnimation {
	return g.animations
}

// Duration returns the aggregate duration: the latest attachment
// window end, or 0 for an empty group. Cached and recomputed lazily
// after Refresh.
func (g *AnimationGroup) Duration() float64 {
	if g.totalDirty {
		g.total = 0
		for _, att := range g.animations {
			if e := att.StartTime() + att.Duration(); e > g.total {
				g.total = e
			}
		}
		g.totalDirty = false
	}
	return g.total
}

// Refresh marks the cached duration stale and propagates the change
// to the group's own owner (the timeline this group is attached to,
// if any).
func (g *AnimationGroup) Refresh() {
	g.totalDirty = true
	if g.owner != nil {
		g.owner.Refresh()
	}
}

// Elapse advances every enabled animation in the group. start is the
// group's accumulated offset on the timeline; each attachment adds
// its own offset on top.
func (g *AnimationGroup) Elapse(node Node, dt, cur, start float64) {
	for _, att := range g.animations {
		if !att.Enabled() {
			continue
		}
		att.Elapse(node, dt, cur, start)
	}
}

// Reset returns every animation in the group to its construction
// defaults.
func (g *AnimationGroup) Reset() {
	for _, att := range g.animations {
		att.Reset()
	}
}

// clone makes the value copy used as an attachment's working state.
// Each inner attachment keeps watching its source definition but gets
// its own working copy owned by the new group.
func (g *AnimationGroup) clone() *AnimationGroup {
	c := &AnimationGroup{Name: g.Name, totalDirty: true}
	c.animations = make([]*AttachableAnimation, len(g.animations))
	for i, att := range g.animations {
		c.animations[i] = att.clone(c)
	}
	return c
}
