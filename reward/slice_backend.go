package reward

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sliceOps instantiates the falloff formulas over []float64. Every op
// copies its input before mutating, gonum's in-place style notwithstanding.
type sliceOps struct{}

func cloneSlice(x []float64) []float64 {
	r := make([]float64, len(x))
	copy(r, x)
	return r
}

func mapSlice(x []float64, f func(float64) float64) []float64 {
	r := make([]float64, len(x))
	for i, v := range x {
		r[i] = f(v)
	}
	return r
}

func (sliceOps) Scale(c float64, x []float64) []float64 {
	r := cloneSlice(x)
	floats.Scale(c, r)
	return r
}

func (sliceOps) Shift(c float64, x []float64) []float64 {
	r := cloneSlice(x)
	floats.AddConst(c, r)
	return r
}

func (sliceOps) Mul(x, y []float64) []float64 {
	r := cloneSlice(x)
	floats.Mul(r, y)
	return r
}

func (sliceOps) Abs(x []float64) []float64  { return mapSlice(x, math.Abs) }
func (sliceOps) Exp(x []float64) []float64  { return mapSlice(x, math.Exp) }
func (sliceOps) Cos(x []float64) []float64  { return mapSlice(x, math.Cos) }
func (sliceOps) Cosh(x []float64) []float64 { return mapSlice(x, math.Cosh) }
func (sliceOps) Tanh(x []float64) []float64 { return mapSlice(x, math.Tanh) }

func (sliceOps) Recip(x []float64) []float64 {
	return mapSlice(x, func(v float64) float64 { return 1 / v })
}

func (sliceOps) SelectAbsLt(x []float64, c float64, then []float64, other float64) []float64 {
	r := make([]float64, len(x))
	for i, v := range x {
		if math.Abs(v) < c {
			r[i] = then[i]
		} else {
			r[i] = other
		}
	}
	return r
}
