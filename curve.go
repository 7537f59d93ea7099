package reel

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Curve selects a built-in easing family for a motion amount.
// Every family maps percent 0 to the range minimum and percent 1 to
// the range maximum and is monotonic in between; Sigmoid, Sinh, and
// Tanh are S-shaped (slow-fast-slow).
type Curve uint8

const (
	Linear Curve = iota
	Cubic
	Exponential
	Logarithmic
	Sigmoid
	Sinh
	Tanh
)

// CurveFunc is a user-supplied easing function. It receives the
// progress percent in [0, 1] and the output range, and returns the
// eased value. No normalization is applied to its result, so the
// function itself is responsible for hitting min at percent 0 and max
// at percent 1 if endpoint convergence matters to the caller.
type CurveFunc func(percent, min, max float64) float64

// The S-curve families are evaluated over fixed canonical domains and
// renormalized onto [0, 1], so the curve shape is independent of the
// caller's output range and raw exp/sinh evaluation can never
// overflow for large targets.
const (
	sigmoidDomain = 6.0
	sinhDomain    = 3.0
	tanhDomain    = 3.0
)

// curveNorm holds the precomputed endpoint values used to renormalize
// the S-curve families. Initialized once on first use; reel is
// single-threaded, so a plain guard is enough.
var curveNorm struct {
	ready    bool
	sigLo    float64
	sigSpan  float64
	sinhSpan float64
	tanhSpan float64
}

func initCurveNorm() {
	curveNorm.sigLo = sigmoid(-sigmoidDomain)
	curveNorm.sigSpan = sigmoid(sigmoidDomain) - curveNorm.sigLo
	curveNorm.sinhSpan = math.Sinh(sinhDomain)
	curveNorm.tanhSpan = math.Tanh(tanhDomain)
	curveNorm.ready = true
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Evaluate maps percent in [0, 1] onto [min, max] through the given
// curve family. Out-of-range percents clamp to the nearest endpoint.
// Equal bounds collapse to min regardless of the curve.
func Evaluate(curve Curve, percent, min, max float64) float64 {
	if percent <= 0 {
		return min
	}
	if percent >= 1 {
		return max
	}
	if !curveNorm.ready {
		initCurveNorm()
	}

	var eased float64
	switch curve {
	case Cubic:
		eased = percent * percent * percent
	case Exponential:
		eased = (math.Exp(percent) - 1) / (math.E - 1)
	case Logarithmic:
		eased = math.Log1p(percent) / math.Ln2
	case Sigmoid:
		eased = (sigmoid(percent*2*sigmoidDomain-sigmoidDomain) - curveNorm.sigLo) / curveNorm.sigSpan
	case Sinh:
		eased = (math.Sinh(percent*2*sinhDomain-sinhDomain) + curveNorm.sinhSpan) / (2 * curveNorm.sinhSpan)
	case Tanh:
		eased = (math.Tanh(percent*2*tanhDomain-tanhDomain) + curveNorm.tanhSpan) / (2 * curveNorm.tanhSpan)
	default:
		eased = percent
	}
	return min + eased*(max-min)
}

// FromEase adapts a gween easing function into a CurveFunc, making
// the whole [ease] catalog (bounce, elastic, back, ...) usable as
// motion curves.
//
// [ease]: https://github.com/tanema/gween
func FromEase(fn ease.TweenFunc) CurveFunc {
	return func(percent, min, max float64) float64 {
		return float64(fn(float32(percent), float32(min), float32(max-min), 1))
	}
}
