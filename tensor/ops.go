package tensor

import "math"

// unary applies f elementwise. df returns the local derivative given the
// input and output element values.
func (t *Tensor) unary(f func(x float64) float64, df func(x, y float64) float64) *Tensor {
	out := &Tensor{shape: t.Shape(), data: make([]float64, len(t.data)), device: t.device}
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	if t.requiresGrad {
		src, node := t, out
		out.requiresGrad = true
		out.parents = []*Tensor{t}
		out.backFn = func(upstream []float64) {
			for i, g := range upstream {
				// A zero upstream gradient contributes nothing, even when
				// the local derivative is NaN (masked-out Select branch).
				if g == 0 {
					continue
				}
				src.grad[i] += g * df(src.data[i], node.data[i])
			}
		}
	}
	return out
}

func (t *Tensor) binary(o *Tensor, f, dfa, dfb func(a, b float64) float64) *Tensor {
	t.compat(o)
	out := &Tensor{shape: t.Shape(), data: make([]float64, len(t.data)), device: t.device}
	for i := range t.data {
		out.data[i] = f(t.data[i], o.data[i])
	}
	if t.requiresGrad || o.requiresGrad {
		a, b := t, o
		out.requiresGrad = true
		out.parents = []*Tensor{t, o}
		out.backFn = func(upstream []float64) {
			for i, g := range upstream {
				if g == 0 {
					continue
				}
				a.grad[i] += g * dfa(a.data[i], b.data[i])
				b.grad[i] += g * dfb(a.data[i], b.data[i])
			}
		}
	}
	return out
}

// Scale returns c * t.
func (t *Tensor) Scale(c float64) *Tensor {
	return t.unary(
		func(x float64) float64 { return c * x },
		func(_, _ float64) float64 { return c },
	)
}

// Shift returns t + c.
func (t *Tensor) Shift(c float64) *Tensor {
	return t.unary(
		func(x float64) float64 { return x + c },
		func(_, _ float64) float64 { return 1 },
	)
}

// Add returns t + o elementwise.
func (t *Tensor) Add(o *Tensor) *Tensor {
	return t.binary(o,
		func(a, b float64) float64 { return a + b },
		func(_, _ float64) float64 { return 1 },
		func(_, _ float64) float64 { return 1 },
	)
}

// Sub returns t - o elementwise.
func (t *Tensor) Sub(o *Tensor) *Tensor {
	return t.binary(o,
		func(a, b float64) float64 { return a - b },
		func(_, _ float64) float64 { return 1 },
		func(_, _ float64) float64 { return -1 },
	)
}

// Mul returns t * o elementwise.
func (t *Tensor) Mul(o *Tensor) *Tensor {
	return t.binary(o,
		func(a, b float64) float64 { return a * b },
		func(_, b float64) float64 { return b },
		func(a, _ float64) float64 { return a },
	)
}

// Abs returns |t|. The derivative at zero is taken as zero.
func (t *Tensor) Abs() *Tensor {
	return t.unary(math.Abs, func(x, _ float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Exp returns e**t elementwise.
func (t *Tensor) Exp() *Tensor {
	return t.unary(math.Exp, func(_, y float64) float64 { return y })
}

// Cos returns cos(t) elementwise.
func (t *Tensor) Cos() *Tensor {
	return t.unary(math.Cos, func(x, _ float64) float64 { return -math.Sin(x) })
}

// Cosh returns cosh(t) elementwise.
func (t *Tensor) Cosh() *Tensor {
	return t.unary(math.Cosh, func(x, _ float64) float64 { return math.Sinh(x) })
}

// Tanh returns tanh(t) elementwise.
func (t *Tensor) Tanh() *Tensor {
	return t.unary(math.Tanh, func(_, y float64) float64 { return 1 - y*y })
}

// Recip returns 1 / t elementwise.
func (t *Tensor) Recip() *Tensor {
	return t.unary(
		func(x float64) float64 { return 1 / x },
		func(_, y float64) float64 { return -y * y },
	)
}

// cmp builds a detached 0/1 mask tensor.
func (t *Tensor) cmp(pred func(v float64) bool) *Tensor {
	out := &Tensor{shape: t.Shape(), data: make([]float64, len(t.data)), device: t.device}
	for i, v := range t.data {
		if pred(v) {
			out.data[i] = 1
		}
	}
	return out
}

// Lt returns the mask t < c. Masks do not track gradients.
func (t *Tensor) Lt(c float64) *Tensor { return t.cmp(func(v float64) bool { return v < c }) }

// Le returns the mask t <= c.
func (t *Tensor) Le(c float64) *Tensor { return t.cmp(func(v float64) bool { return v <= c }) }

// Gt returns the mask t > c.
func (t *Tensor) Gt(c float64) *Tensor { return t.cmp(func(v float64) bool { return v > c }) }

// Ge returns the mask t >= c.
func (t *Tensor) Ge(c float64) *Tensor { return t.cmp(func(v float64) bool { return v >= c }) }

// And returns the elementwise conjunction of two masks.
func And(a, b *Tensor) *Tensor {
	a.compat(b)
	out := &Tensor{shape: a.Shape(), data: make([]float64, len(a.data)), device: a.device}
	for i := range a.data {
		if a.data[i] != 0 && b.data[i] != 0 {
			out.data[i] = 1
		}
	}
	return out
}

// Select returns a where cond is nonzero and b elsewhere. Both branches are
// evaluated eagerly; a discarded element is dropped and its gradient
// contribution is exactly zero, even when the discarded value is NaN.
func Select(cond, a, b *Tensor) *Tensor {
	cond.compat(a)
	cond.compat(b)
	out := &Tensor{shape: a.Shape(), data: make([]float64, len(a.data)), device: a.device}
	for i := range a.data {
		if cond.data[i] != 0 {
			out.data[i] = a.data[i]
		} else {
			out.data[i] = b.data[i]
		}
	}
	if a.requiresGrad || b.requiresGrad {
		mask := cond
		out.requiresGrad = true
		out.parents = []*Tensor{a, b}
		out.backFn = func(upstream []float64) {
			for i, g := range upstream {
				if g == 0 {
					continue
				}
				if mask.data[i] != 0 {
					a.grad[i] += g
				} else {
					b.grad[i] += g
				}
			}
		}
	}
	return out
}
