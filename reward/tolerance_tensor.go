package reward

import (
	"github.com/rs/zerolog/log"

	"github.com/kinetix-rl/rewardkit/tensor"
)

// ToleranceTensor is the differentiable counterpart of ToleranceSlice. It
// performs the identical computation over gradient-tracking tensors, so
// calling Backward on (a function of) the result propagates gradients into
// x. The result always stays a tensor, even for a single element, to keep
// the graph connected.
//
// A zero margin makes the score a hard 0/1 indicator. That result is
// constant in x, so it carries no graph connection back to x: Backward
// through it leaves x's gradient unset rather than zero-filled. With a
// positive margin the score is connected and in-bounds elements get
// explicit zero gradients.
func ToleranceTensor(x *tensor.Tensor, opts ...Option) (*tensor.Tensor, error) {
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
		Int("n", x.Size()).Msg("scoring tolerance tensor")

	inBounds := tensor.And(x.Ge(p.lower), x.Le(p.upper))

	if p.margin == 0 {
		return tensor.Select(inBounds, tensor.FullLike(x, 1), tensor.FullLike(x, 0)), nil
	}

	below := x.Scale(-1).Shift(p.lower) // lower - x
	above := x.Shift(-p.upper)          // x - upper
	d := tensor.Select(x.Lt(p.lower), below, above).Scale(1 / p.margin)

	fall, err := evalSigmoid[*tensor.Tensor](tensorOps{}, d, p.valueAtMargin, p.sigmoid)
	if err != nil {
		return nil, err
	}
	return tensor.Select(inBounds, tensor.FullLike(x, 1), fall), nil
}
