// Package reward computes bounded, smoothly decaying closeness scores used
// as shaping terms in reward functions. A score is 1 inside an inclusive
// target interval and falls off towards 0 outside it, following one of
// eight falloff shapes. Two backends produce identical numbers: an eager
// []float64 backend and a gradient-tracking tensor backend, so the score
// can sit inside a differentiable training objective.
//
// All scores are float64 and always lie in [0, 1].
package reward

import (
	"fmt"
	"math"
)

// Sigmoid selects the falloff shape applied outside the target interval.
// The zero value is Gaussian, matching the scorer default.
type Sigmoid uint8

const (
	Gaussian Sigmoid = iota
	Hyperbolic
	LongTail
	Reciprocal
	Cosine
	Linear
	Quadratic
	TanhSquared
	numSigmoids
)

var sigmoidNames = [numSigmoids]string{
	Gaussian:    "gaussian",
	Hyperbolic:  "hyperbolic",
	LongTail:    "long_tail",
	Reciprocal:  "reciprocal",
	Cosine:      "cosine",
	Linear:      "linear",
	Quadratic:   "quadratic",
	TanhSquared: "tanh_squared",
}

func (s Sigmoid) String() string {
	if s < numSigmoids {
		return sigmoidNames[s]
	}
	return fmt.Sprintf("sigmoid(%d)", uint8(s))
}

// ParseSigmoid maps a shape name to its Sigmoid value.
func ParseSigmoid(name string) (Sigmoid, error) {
	for s, n := range sigmoidNames {
		if n == name {
			return Sigmoid(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSigmoid, name)
}

// Sigmoids returns all falloff shapes.
func Sigmoids() []Sigmoid {
	all := make([]Sigmoid, numSigmoids)
	for i := range all {
		all[i] = Sigmoid(i)
	}
	return all
}

// sigmoidScale validates valueAt1 for the shape and derives the input
// scaling that makes the shape pass through valueAt1 at x == 1. The
// derivation is plain scalar math shared by both backends, so the two
// execution paths cannot disagree on it.
func sigmoidScale(kind Sigmoid, valueAt1 float64) (float64, error) {
	switch kind {
	case Cosine, Linear, Quadratic:
		// These shapes reach 0 at a finite distance, so 0 is a valid target.
		if !(valueAt1 >= 0 && valueAt1 < 1) {
			return 0, fmt.Errorf("%w: must be in [0, 1) for %s, got %v",
				ErrInvalidValueAtMargin, kind, valueAt1)
		}
	case Gaussian, Hyperbolic, LongTail, Reciprocal, TanhSquared:
		if !(valueAt1 > 0 && valueAt1 < 1) {
			return 0, fmt.Errorf("%w: must be strictly between 0 and 1 for %s, got %v",
				ErrInvalidValueAtMargin, kind, valueAt1)
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSigmoid, kind)
	}

	switch kind {
	case Gaussian:
		return math.Sqrt(-2 * math.Log(valueAt1)), nil
	case Hyperbolic:
		return math.Acosh(1 / valueAt1), nil
	case LongTail:
		return math.Sqrt(1/valueAt1 - 1), nil
	case Reciprocal:
		return 1/valueAt1 - 1, nil
	case Cosine:
		return math.Acos(2*valueAt1-1) / math.Pi, nil
	case Linear:
		return 1 - valueAt1, nil
	case Quadratic:
		return math.Sqrt(1 - valueAt1), nil
	default: // TanhSquared
		return math.Atanh(math.Sqrt(1 - valueAt1)), nil
	}
}

// elemOps is the minimal elementwise arithmetic a falloff shape needs.
// Both backends implement it, and evalSigmoid below is the only place the
// shape formulas are written down.
type elemOps[T any] interface {
	Scale(c float64, x T) T // c * x
	Shift(c float64, x T) T // c + x
	Mul(x, y T) T
	Abs(x T) T
	Exp(x T) T
	Cos(x T) T
	Cosh(x T) T
	Tanh(x T) T
	Recip(x T) T // 1 / x
	// SelectAbsLt keeps then where |x| < c and substitutes other elsewhere.
	// The discarded branch may hold domain-invalid values; they are dropped
	// silently.
	SelectAbsLt(x T, c float64, then T, other float64) T
}

// evalSigmoid returns 1 where x == 0 and a value in [0, 1) elsewhere,
// decaying with |x| and passing through valueAt1 at x == 1.
func evalSigmoid[T any](b elemOps[T], x T, valueAt1 float64, kind Sigmoid) (T, error) {
	scale, err := sigmoidScale(kind, valueAt1)
	if err != nil {
		var zero T
		return zero, err
	}

	switch kind {
	case Gaussian:
		sx := b.Scale(scale, x)
		return b.Exp(b.Scale(-0.5, b.Mul(sx, sx))), nil
	case Hyperbolic:
		return b.Recip(b.Cosh(b.Scale(scale, x))), nil
	case LongTail:
		sx := b.Scale(scale, x)
		return b.Recip(b.Shift(1, b.Mul(sx, sx))), nil
	case Reciprocal:
		return b.Recip(b.Shift(1, b.Scale(scale, b.Abs(x)))), nil
	case Cosine:
		// cos may see an out-of-domain argument in elements the mask
		// discards; SelectAbsLt drops those without surfacing them.
		sx := b.Scale(scale, x)
		cosine := b.Scale(0.5, b.Shift(1, b.Cos(b.Scale(math.Pi, sx))))
		return b.SelectAbsLt(sx, 1, cosine, 0), nil
	case Linear:
		sx := b.Scale(scale, x)
		return b.SelectAbsLt(sx, 1, b.Shift(1, b.Scale(-1, sx)), 0), nil
	case Quadratic:
		sx := b.Scale(scale, x)
		return b.SelectAbsLt(sx, 1, b.Shift(1, b.Scale(-1, b.Mul(sx, sx))), 0), nil
	default: // TanhSquared, sigmoidScale already rejected unknown kinds
		th := b.Tanh(b.Scale(scale, x))
		return b.Shift(1, b.Scale(-1, b.Mul(th, th))), nil
	}
}
