package reel

// Animation is a reusable definition: an ordered set of motions and
// actions plus lifecycle callbacks. Definitions are built once (by
// hand or by a loader calling the Add mutators) and then attached to
// Timelines or AnimationGroups, which play back a private copy; the
// definition itself is never mutated by playback.
//
// Durations and start times are in seconds, relative to the
// animation's own clock.
type Animation struct {
	Name string

	// Lifecycle callbacks, invoked with the playing (working) copy.
	// OnStart fires the first tick the clock enters the animation,
	// OnFinish when it reaches the total duration moving forward, and
	// OnFinishRevert when it returns to zero moving backward.
	OnStart        func(*Animation)
	OnFinish       func(*Animation)
	OnFinishRevert func(*Animation)

	motions []Motion
	actions []Action

	total      float64
	totalDirty bool

	started  bool
	finished bool

	released bool
}

// NewAnimation creates an empty animation definition.
func NewAnimation(name string) *Animation {
	return &Animation{Name: name}
}

// AddRotation appends a motion rotating the node by angle radians over
// duration seconds, starting at start.
func (a *Animation) AddRotation(angle float64, curve Curve, start, duration float64) {
	m := Motion{Kind: MotionRotate, Start: start, Duration: duration, count: 1}
	m.amounts[0] = Amount{Target: angle, Curve: curve}
	a.addMotion(m)
}

// AddRotationFunc is AddRotation with a user easing function in place
// of a built-in curve.
func (a *Animation) AddRotationFunc(angle float64, fn CurveFunc, start, duration float64) {
	m := Motion{Kind: MotionRotate, Start: start, Duration: duration, count: 1}
	m.amounts[0] = Amount{Target: angle, Fn: fn}
	a.addMotion(m)
}

// AddScaling appends a motion changing the node's scale by delta over
// duration seconds, starting at start. Both axes share the curve.
func (a *Animation) AddScaling(delta Vec2, curve Curve, start, duration float64) {
	m := Motion{Kind: MotionScale, Start: start, Duration: duration, count: 2}
	m.amounts[0] = Amount{Target: delta.X, Curve: curve}
	m.amounts[1] = Amount{Target: delta.Y, Curve: curve}
	a.addMotion(m)
}

// AddTranslation appends a motion moving the node by delta over
// duration seconds, starting at start. All axes share the curve.
func (a *Animation) AddTranslation(delta Vec3, curve Curve, start, duration float64) {
	m := Motion{Kind: MotionTranslate, Start: start, Duration: duration, count: 3}
	m.amounts[0] = Amount{Target: delta.X, Curve: curve}
	m.amounts[1] = Amount{Target: delta.Y, Curve: curve}
	m.amounts[2] = Amount{Target: delta.Z, Curve: curve}
	a.addMotion(m)
}

// AddAmount appends a user motion easing a single scalar toward
// target; each tick's delta is delivered to onElapse instead of a
// node.
func (a *Animation) AddAmount(target float64, curve Curve, start, duration float64, onElapse func(*Animation, float64)) {
	m := Motion{Kind: MotionUser, Start: start, Duration: duration, count: 1, OnElapse: onElapse}
	m.amounts[0] = Amount{Target: target, Curve: curve}
	a.addMotion(m)
}

// AddAmountFunc is AddAmount with a user easing function in place of a
// built-in curve.
func (a *Animation) AddAmountFunc(target float64, fn CurveFunc, start, duration float64, onElapse func(*Animation, float64)) {
	m := Motion{Kind: MotionUser, Start: start, Duration: duration, count: 1, OnElapse: onElapse}
	m.amounts[0] = Amount{Target: target, Fn: fn}
	a.addMotion(m)
}

func (a *Animation) addMotion(m Motion) {
	a.motions = append(a.motions, m)
	a.totalDirty = true
}

// AddAction appends a node action executing when the clock crosses at.
func (a *Animation) AddAction(kind ActionKind, at float64) {
	a.actions = append(a.actions, Action{Kind: kind, Time: at})
}

// AddUserAction appends a user action at the given time. onExecute
// runs on a forward crossing; onOpposite (which may be nil) runs on a
// backward crossing instead.
func (a *Animation) AddUserAction(at float64, data any, onExecute, onOpposite func(*Animation, any)) {
	a.actions = append(a.actions, Action{
		Kind:              ActionUser,
		Time:              at,
		Data:              data,
		OnExecute:         onExecute,
		OnExecuteOpposite: onOpposite,
	})
}

// Motions returns the animation's motions. The returned slice aliases
// the animation's state and MUST NOT be resized by the caller.
func (a *Animation) Motions() []Motion {
	return a.motions
}

// Actions returns the animation's actions, under the same aliasing
// rule as Motions.
func (a *Animation) Actions() []Action {
	return a.actions
}

// Duration returns the total duration: the latest motion window end,
// or 0 with no motions. The value is cached and recomputed lazily
// after motions change.
func (a *Animation) Duration() float64 {
	if a.totalDirty {
		a.total = 0
		for i := range a.motions {
			if e := a.motions[i].end(); e > a.total {
				a.total = e
			}
		}
		a.totalDirty = false
	}
	return a.total
}

// Elapse advances the animation to timeline time cur. start is the
// attachment offset on the timeline; dt is the signed, rate-scaled
// delta for this tick and carries the direction of travel.
func (a *Animation) Elapse(node Node, dt, cur, start float64) {
	local := cur - start
	total := a.Duration()

	if dt > 0 && !a.started && local > 0 {
		a.started = true
		if a.OnStart != nil {
			a.OnStart(a)
		}
	}

	for i := range a.motions {
		a.motions[i].elapse(a, node, local)
	}
	for i := range a.actions {
		a.actions[i].execute(a, node, dt, local)
	}

	if dt > 0 && a.started && !a.finished && local >= total {
		a.finished = true
		if a.OnFinish != nil {
			a.OnFinish(a)
		}
	}
	if dt < 0 {
		if local < total {
			a.finished = false
		}
		if a.started && local <= 0 {
			a.started = false
			if a.OnFinishRevert != nil {
				a.OnFinishRevert(a)
			}
		}
	}
}

// Reset returns every motion amount to its construction default and
// clears per-pass action and lifecycle state. Windows and the total
// duration are untouched.
func (a *Animation) Reset() {
	for i := range a.motions {
		a.motions[i].reset()
	}
	for i := range a.actions {
		a.actions[i].executed = false
	}
	a.started = false
	a.finished = false
}

// clone makes the value copy used as an attachment's working state.
func (a *Animation) clone() *Animation {
	c := *a
	c.motions = append([]Motion(nil), a.motions...)
	c.actions = append([]Action(nil), a.actions...)
	c.released = false
	return &c
}
