package reel

// Amount is the minimal unit of eased interpolation: a scalar current
// value progressing toward a target through a curve. Amounts are owned
// by their enclosing Motion and advanced only during Elapse.
type Amount struct {
	Current float64
	Target  float64
	Curve   Curve

	// Fn, when non-nil, replaces Curve with a user easing function.
	Fn CurveFunc
}

// advance moves Current to the eased value for percent and returns the
// delta applied since the previous call. The delta (not the absolute
// value) is what callers apply to external state, so playback composes
// with other systems mutating the same node between frames.
// percent >= 1 snaps Current to Target exactly.
func (a *Amount) advance(percent float64) float64 {
	prev := a.Current
	switch {
	case percent >= 1:
		a.Current = a.Target
	case a.Fn != nil:
		a.Current = a.Fn(percent, 0, a.Target)
	default:
		a.Current = Evaluate(a.Curve, percent, 0, a.Target)
	}
	return a.Current - prev
}

// reset returns Current to its construction default.
func (a *Amount) reset() {
	a.Current = 0
}
