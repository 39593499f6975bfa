package reward

import "github.com/kinetix-rl/rewardkit/tensor"

// tensorOps instantiates the falloff formulas over gradient-tracking
// tensors. Every operation stays in the computation graph so the score can
// be back-propagated through.
type tensorOps struct{}

func (tensorOps) Scale(c float64, x *tensor.Tensor) *tensor.Tensor { return x.Scale(c) }
func (tensorOps) Shift(c float64, x *tensor.Tensor) *tensor.Tensor { return x.Shift(c) }
func (tensorOps) Mul(x, y *tensor.Tensor) *tensor.Tensor           { return x.Mul(y) }
func (tensorOps) Abs(x *tensor.Tensor) *tensor.Tensor              { return x.Abs() }
func (tensorOps) Exp(x *tensor.Tensor) *tensor.Tensor              { return x.Exp() }
func (tensorOps) Cos(x *tensor.Tensor) *tensor.Tensor              { return x.Cos() }
func (tensorOps) Cosh(x *tensor.Tensor) *tensor.Tensor             { return x.Cosh() }
func (tensorOps) Tanh(x *tensor.Tensor) *tensor.Tensor             { return x.Tanh() }
func (tensorOps) Recip(x *tensor.Tensor) *tensor.Tensor            { return x.Recip() }

func (tensorOps) SelectAbsLt(x *tensor.Tensor, c float64, then *tensor.Tensor, other float64) *tensor.Tensor {
	return tensor.Select(x.Abs().Lt(c), then, tensor.FullLike(x, other))
}
