package reel

// MotionKind discriminates the Motion union. A single flat struct with
// a kind tag is used instead of per-kind types to keep the per-frame
// iteration free of interface dispatch.
type MotionKind uint8

const (
	MotionRotate MotionKind = iota
	MotionScale
	MotionTranslate
	MotionUser
)

// Motion is a timed change to one or more scalar amounts over the
// local window [Start, Start+Duration], both in animation-relative
// seconds. Rotate uses one amount (radians), Scale two (X, Y),
// Translate three (X, Y, Z), and User up to three arbitrary amounts
// delivered through OnElapse.
type Motion struct {
	Kind     MotionKind
	Start    float64
	Duration float64

	// OnElapse receives each amount delta for MotionUser motions.
	OnElapse func(anim *Animation, delta float64)

	amounts [3]Amount
	count   int
}

// end returns the window end time.
func (m *Motion) end() float64 {
	return m.Start + m.Duration
}

// Amounts returns the motion's active amounts. The returned slice
// aliases the motion's state and MUST NOT be resized by the caller.
func (m *Motion) Amounts() []Amount {
	return m.amounts[:m.count]
}

// progress converts an animation-local time into the motion's clamped
// window percent. Times before the window rail at 0 and times past it
// rail at 1, so a tick that jumps over the window still completes the
// motion, and a reverse pass that leaves the window returns every
// amount to its construction default.
func (m *Motion) progress(local float64) float64 {
	if m.Duration <= 0 {
		if local >= m.Start {
			return 1
		}
		return 0
	}
	p := (local - m.Start) / m.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// elapse advances every amount to the given animation-local time and
// applies the resulting deltas to the node (or, for user motions, to
// OnElapse). A nil node discards node-directed deltas.
func (m *Motion) elapse(anim *Animation, node Node, local float64) {
	percent := m.progress(local)

	switch m.Kind {
	case MotionRotate:
		d := m.amounts[0].advance(percent)
		if d != 0 && node != nil {
			node.Rotate(d)
		}
	case MotionScale:
		dx := m.amounts[0].advance(percent)
		dy := m.amounts[1].advance(percent)
		if (dx != 0 || dy != 0) && node != nil {
			node.ScaleBy(Vec2{dx, dy})
		}
	case MotionTranslate:
		dx := m.amounts[0].advance(percent)
		dy := m.amounts[1].advance(percent)
		dz := m.amounts[2].advance(percent)
		if (dx != 0 || dy != 0 || dz != 0) && node != nil {
			node.Translate(Vec3{dx, dy, dz})
		}
	case MotionUser:
		for i := 0; i < m.count; i++ {
			d := m.amounts[i].advance(percent)
			if d != 0 && m.OnElapse != nil {
				m.OnElapse(anim, d)
			}
		}
	}
}

// reset returns every amount to its construction default. The window
// is untouched.
func (m *Motion) reset() {
	for i := 0; i < m.count; i++ {
		m.amounts[i].reset()
	}
}
