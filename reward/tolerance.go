package reward

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// DefaultValueAtMargin is the score returned at margin distance from the
// bounds when no explicit value is configured.
const DefaultValueAtMargin = 0.1

type params struct {
	lower, upper  float64
	margin        float64
	sigmoid       Sigmoid
	valueAtMargin float64
}

func defaultParams() params {
	return params{
		lower:         0,
		upper:         0,
		margin:        0,
		sigmoid:       Gaussian,
		valueAtMargin: DefaultValueAtMargin,
	}
}

// Option configures a tolerance call.
type Option func(*params)

// WithBounds sets the inclusive target interval. Either side may be
// infinite; equal bounds express an exact target value.
func WithBounds(lower, upper float64) Option {
	return func(p *params) {
		p.lower = lower
		p.upper = upper
	}
}

// WithMargin sets the distance beyond a bound at which the score reaches
// the value-at-margin. A zero margin makes the score a hard indicator.
func WithMargin(margin float64) Option {
	return func(p *params) {
		p.margin = margin
	}
}

// WithSigmoid selects the falloff shape applied outside the bounds.
func WithSigmoid(s Sigmoid) Option {
	return func(p *params) {
		p.sigmoid = s
	}
}

// WithValueAtMargin sets the score at exactly margin distance from the
// bounds. Ignored when the margin is zero.
func WithValueAtMargin(v float64) Option {
	return func(p *params) {
		p.valueAtMargin = v
	}
}

func (p params) validate() error {
	if p.lower > p.upper {
		return fmt.Errorf("%w: got (%v, %v)", ErrInvalidBounds, p.lower, p.upper)
	}
	if p.margin < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMargin, p.margin)
	}
	return nil
}

// Tolerance returns 1 when x falls inside the bounds and a score in [0, 1)
// decaying with distance from the nearest bound otherwise.
func Tolerance(x float64, opts ...Option) (float64, error) {
	scores, err := ToleranceSlice([]float64{x}, opts...)
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

// ToleranceSlice scores every element of xs independently against the same
// bounds, margin and falloff shape. The result has the same length as xs.
func ToleranceSlice(xs []float64, opts ...Option) ([]float64, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	log.Trace().
		Float64("lower", p.lower).Float64("upper", p.upper).
		Float64("margin", p.margin).Str("sigmoid", p.sigmoid.String()).
		Int("n", len(xs)).Msg("scoring tolerance")

	inBounds := make([]bool, len(xs))
	for i, x := range xs {
		inBounds[i] = p.lower <= x && x <= p.upper
	}

	if p.margin == 0 {
		scores := make([]float64, len(xs))
		for i := range xs {
			if inBounds[i] {
				scores[i] = 1
			}
		}
		return scores, nil
	}

	// Signed excess distance past the nearest violated bound, in margins.
	// In-bounds elements get an arbitrary non-positive distance here; the
	// final pass overwrites them with 1.
	d := make([]float64, len(xs))
	for i, x := range xs {
		if x < p.lower {
			d[i] = (p.lower - x) / p.margin
		} else {
			d[i] = (x - p.upper) / p.margin
		}
	}

	scores, err := evalSigmoid[[]float64](sliceOps{}, d, p.valueAtMargin, p.sigmoid)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		if inBounds[i] {
			scores[i] = 1
		}
	}
	return scores, nil
}
