package reel

import "sort"

// playable is the common playback surface of the two attachment kinds.
type playable interface {
	Elapse(node Node, dt, cur, base float64)
	Reset()
	Enabled() bool
	StartTime() float64
	Duration() float64
}

// timelineCmd identifies a deferred control call. Control methods
// invoked from inside a callback while the timeline is mid-tick are
// queued and applied at the end of the tick, so callbacks can safely
// stop, restart, or revert their own timeline.
type timelineCmd uint8

const (
	cmdStart timelineCmd = iota
	cmdStop
	cmdReset
	cmdRestart
	cmdRevert
)

type pendingCmd struct {
	kind timelineCmd
	over float64 // Revert duration
}

// Timeline is the playback engine: it owns a set of attached
// animations and groups, advances a single clock, applies the global
// playback rate, and handles reverse playback and repeat cycles.
//
// A timeline is in one of three states: stopped, running forward, or
// running in reverse. [Timeline.Elapse] is the per-frame entry point;
// a stopped timeline ignores it.
type Timeline struct {
	Name string

	// Lifecycle callbacks. OnFinish fires when the final forward pass
	// completes, OnFinishCycle at the end of each repeated cycle, and
	// OnFinishRevert when a revert reaches zero.
	OnFinish       func(*Timeline)
	OnFinishCycle  func(*Timeline)
	OnFinishRevert func(*Timeline)

	node Node

	current float64
	total   float64

	rate        float64
	reverseRate float64

	running bool
	reverse bool
	resume  bool // running state to restore when a revert completes
	atEnd   bool // forward-end handling already ran at this position

	repeatSet     bool
	repeatForever bool
	cycle         int
	maxCycle      int

	anims  []*AttachableAnimation
	groups []*AttachableAnimationGroup
	byEnd  []playable // end-time-ordered scan index, rebuilt by Refresh

	ticking bool
	pending []pendingCmd
}

// NewTimeline creates a stopped timeline targeting node at playback
// rate 1. node may be nil for timelines that drive only user
// callbacks.
func NewTimeline(name string, node Node) *Timeline {
	return &Timeline{Name: name, node: node, rate: 1}
}

// Node returns the timeline's target node.
func (t *Timeline) Node() Node {
	return t.node
}

// SetNode retargets the timeline. Attachments already in progress
// keep their state; subsequent deltas flow to the new node.
func (t *Timeline) SetNode(node Node) {
	t.node = node
}

// Attach instantiates the animation on this timeline at the given
// start offset and returns the attachment.
func (t *Timeline) Attach(anim *Animation, start float64) *AttachableAnimation {
	att := newAttachableAnimation(anim, start, true, t)
	t.anims = append(t.anims, att)
	t.Refresh()
	return att
}

// AttachGroup instantiates the group on this timeline at the given
// start offset and returns the attachment.
func (t *Timeline) AttachGroup(group *AnimationGroup, start float64) *AttachableAnimationGroup {
	att := newAttachableAnimationGroup(group, start, true, t)
	t.groups = append(t.groups, att)
	t.Refresh()
	return att
}

// Detach removes the attachment without touching its source
// definition. Detaching an attachment that does not belong to this
// timeline is a no-op returning false.
func (t *Timeline) Detach(att *AttachableAnimation) bool {
	for i, a := range t.anims {
		if a == att {
			copy(t.anims[i:], t.anims[i+1:])
			t.anims[len(t.anims)-1] = nil
			t.anims = t.anims[:len(t.anims)-1]
			t.Refresh()
			return true
		}
	}
	return false
}

// DetachGroup removes the group attachment, with the same no-op
// semantics as Detach.
func (t *Timeline) DetachGroup(att *AttachableAnimationGroup) bool {
	for i, g := range t.groups {
		if g == att {
			copy(t.groups[i:], t.groups[i+1:])
			t.groups[len(t.groups)-1] = nil
			t.groups = t.groups[:len(t.groups)-1]
			t.Refresh()
			return true
		}
	}
	return false
}

// Refresh recomputes the total duration as the latest attachment
// window end (enabled or not) and rebuilds the end-time-ordered scan
// index. Attachments call this on structural changes; call it
// yourself after mutating an attached working copy's motions.
func (t *Timeline) Refresh() {
	t.byEnd = t.byEnd[:0]
	for _, a := range t.anims {
		t.byEnd = append(t.byEnd, a)
	}
	for _, g := range t.groups {
		t.byEnd = append(t.byEnd, g)
	}
	t.total = 0
	for _, p := range t.byEnd {
		if e := p.StartTime() + p.Duration(); e > t.total {
			t.total = e
		}
	}
	sort.SliceStable(t.byEnd, func(i, j int) bool {
		return t.byEnd[i].StartTime()+t.byEnd[i].Duration() <
			t.byEnd[j].StartTime()+t.byEnd[j].Duration()
	})
}

// CurrentTime returns the clock position in seconds.
func (t *Timeline) CurrentTime() float64 {
	return t.current
}

// Duration returns the derived total duration.
func (t *Timeline) Duration() float64 {
	return t.total
}

// IsRunning reports whether the timeline advances on Elapse.
func (t *Timeline) IsRunning() bool {
	return t.running
}

// IsReversing reports whether the timeline is playing back toward
// zero.
func (t *Timeline) IsReversing() bool {
	return t.reverse
}

// PlaybackRate returns the forward playback rate.
func (t *Timeline) PlaybackRate() float64 {
	return t.rate
}

// SetPlaybackRate sets the forward playback rate. Non-positive rates
// are ignored and the previous rate is retained.
func (t *Timeline) SetPlaybackRate(rate float64) {
	if rate <= 0 {
		debugWarnf("SetPlaybackRate(%v) ignored on timeline %q", rate, t.Name)
		return
	}
	t.rate = rate
}

// SetRepeatCount configures n additional forward cycles before the
// timeline finishes, so playback makes n+1 passes in total. Negative
// counts are treated as already satisfied (a single pass).
func (t *Timeline) SetRepeatCount(n int) {
	if n < 0 {
		n = 0
	}
	t.repeatSet = true
	t.repeatForever = false
	t.maxCycle = n
	t.cycle = 0
}

// RepeatForever loops the timeline until it is explicitly stopped or
// reset.
func (t *Timeline) RepeatForever() {
	t.repeatSet = true
	t.repeatForever = true
	t.cycle = 0
}

// ClearRepeat returns the timeline to single-pass playback.
func (t *Timeline) ClearRepeat() {
	t.repeatSet = false
	t.repeatForever = false
	t.cycle = 0
}

// Cycle returns the number of completed forward passes since repeat
// was configured.
func (t *Timeline) Cycle() int {
	return t.cycle
}

// Start runs the timeline, resuming the current direction. Starting a
// running timeline is a no-op.
func (t *Timeline) Start() {
	if t.ticking {
		t.pending = append(t.pending, pendingCmd{kind: cmdStart})
		return
	}
	t.running = true
}

// Stop halts the timeline, preserving the clock and direction so a
// later Start resumes where playback left off.
func (t *Timeline) Stop() {
	if t.ticking {
		t.pending = append(t.pending, pendingCmd{kind: cmdStop})
		return
	}
	t.running = false
}

// Reset stops the timeline, forces the clock to zero, resets every
// attachment to its construction defaults, and clears the repeat
// progress.
func (t *Timeline) Reset() {
	if t.ticking {
		t.pending = append(t.pending, pendingCmd{kind: cmdReset})
		return
	}
	t.running = false
	t.reverse = false
	t.resume = false
	t.atEnd = false
	t.current = 0
	t.cycle = 0
	for _, p := range t.byEnd {
		p.Reset()
	}
}

// Restart is Reset followed by Start.
func (t *Timeline) Restart() {
	if t.ticking {
		t.pending = append(t.pending, pendingCmd{kind: cmdRestart})
		return
	}
	t.Reset()
	t.Start()
}

// Revert plays the timeline backward to zero over the given
// wall-clock duration, then restores the pre-revert running state. A
// non-positive duration jumps to zero immediately, still driving
// every attachment through the reverse pass so opposite actions and
// revert callbacks fire.
func (t *Timeline) Revert(over float64) {
	if t.ticking {
		t.pending = append(t.pending, pendingCmd{kind: cmdRevert, over: over})
		return
	}
	if !t.reverse {
		t.resume = t.running
	}
	t.reverse = true
	t.running = true
	if over <= 0 {
		t.reverseRate = 0
		t.step(-t.current)
		return
	}
	t.reverseRate = t.current / over
}

// Elapse advances the timeline by dt wall-clock seconds, scaled by
// the playback rate (or the revert rate when reversing). This is the
// per-frame driver entry point. Non-positive dt is a no-op.
//
// Elapse must not be re-entered from a callback; use the control
// methods (Start, Stop, Reset, Restart, Revert), which defer until
// the tick completes.
func (t *Timeline) Elapse(dt float64) {
	if !t.running || dt <= 0 {
		return
	}
	if t.ticking {
		debugPanicf("Elapse re-entered on timeline %q", t.Name)
		return
	}
	if t.reverse {
		t.step(-dt * t.reverseRate)
		return
	}
	t.step(dt * t.rate)
}

// step applies an already-scaled, signed clock delta: it moves the
// clock, elapses every enabled attachment, and handles the
// forward-end (repeat or finish) and reverse-end transitions.
func (t *Timeline) step(scaled float64) {
	t.ticking = true

	next := t.current + scaled
	if next < 0 {
		next = 0
	} else if next > t.total {
		next = t.total
	}
	dt := next - t.current
	t.current = next

	for _, p := range t.byEnd {
		if !p.Enabled() {
			continue
		}
		p.Elapse(t.node, dt, t.current, 0)
	}

	if t.current < t.total {
		t.atEnd = false
	}

	switch {
	case !t.reverse && scaled > 0 && t.current >= t.total && !t.atEnd:
		t.atEnd = true
		if t.repeatSet {
			t.cycle++
			if t.repeatForever || t.cycle <= t.maxCycle {
				t.wrap()
				if t.OnFinishCycle != nil {
					t.OnFinishCycle(t)
				}
				break
			}
		}
		t.running = false
		if t.OnFinish != nil {
			t.OnFinish(t)
		}
	case t.reverse && t.current <= 0:
		t.reverse = false
		t.running = t.resume
		t.atEnd = false
		if t.OnFinishRevert != nil {
			t.OnFinishRevert(t)
		}
	}

	t.ticking = false
	t.flushPending()
}

// wrap returns the clock to zero for the next repeat cycle and resets
// every attachment so the cycle replays from construction defaults.
func (t *Timeline) wrap() {
	t.current = 0
	t.atEnd = false
	for _, p := range t.byEnd {
		p.Reset()
	}
}

// flushPending applies control calls deferred during the tick, in
// order.
func (t *Timeline) flushPending() {
	for len(t.pending) > 0 {
		cmd := t.pending[0]
		copy(t.pending, t.pending[1:])
		t.pending = t.pending[:len(t.pending)-1]
		switch cmd.kind {
		case cmdStart:
			t.Start()
		case cmdStop:
			t.Stop()
		case cmdReset:
			t.Reset()
		case cmdRestart:
			t.Restart()
		case cmdRevert:
			t.Revert(cmd.over)
		}
	}
}
