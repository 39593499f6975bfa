// Package tensor implements a small float64 tensor with reverse-mode
// gradient tracking. Operations build a computation graph; Backward walks
// the graph and accumulates gradients into leaves marked with RequireGrad.
//
// Only elementwise operations are provided and operands must share one
// shape and one device. There is no broadcasting beyond scalar constants.
package tensor

import "fmt"

// Device identifies where a tensor's data lives. Only the CPU backend is
// implemented; the tag exists so that mixed-device operations fail loudly
// instead of silently computing on the wrong data.
type Device uint8

const CPU Device = 0

func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	default:
		return fmt.Sprintf("device(%d)", uint8(d))
	}
}

// Shape holds tensor dimensions, outermost first.
type Shape []int

// Size returns the number of elements a tensor of this shape holds.
func (s Shape) Size() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Eq reports whether two shapes are identical.
func (s Shape) Eq(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Tensor is an n-dimensional array of float64 with optional reverse-mode
// gradient tracking.
type Tensor struct {
	shape  Shape
	data   []float64
	device Device

	requiresGrad bool
	grad         []float64
	parents      []*Tensor
	backFn       func(upstream []float64)
}

// New builds a CPU tensor from a copy of data. With no explicit shape the
// tensor is one-dimensional. Panics if the shape does not fit the data.
func New(data []float64, shape ...int) *Tensor {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	s := Shape(append([]int(nil), shape...))
	if s.Size() != len(data) {
		panic(fmt.Sprintf("tensor: shape %v does not fit %d elements", s, len(data)))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Tensor{shape: s, data: d, device: CPU}
}

// Full returns a tensor with every element set to v.
func Full(v float64, shape ...int) *Tensor {
	if len(shape) == 0 {
		shape = []int{1}
	}
	s := Shape(append([]int(nil), shape...))
	d := make([]float64, s.Size())
	for i := range d {
		d[i] = v
	}
	return &Tensor{shape: s, data: d, device: CPU}
}

// FullLike returns a constant tensor with t's shape and device.
func FullLike(t *Tensor, v float64) *Tensor {
	d := make([]float64, len(t.data))
	for i := range d {
		d[i] = v
	}
	return &Tensor{shape: t.Shape(), data: d, device: t.device}
}

// RequireGrad marks a leaf tensor as a gradient target and returns it.
// Panics when called on a tensor produced by an operation.
func (t *Tensor) RequireGrad() *Tensor {
	if t.backFn != nil {
		panic("tensor: RequireGrad on a non-leaf tensor")
	}
	t.requiresGrad = true
	return t
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return append(Shape(nil), t.shape...)
}

// Size returns the number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// Device returns where the tensor's data lives.
func (t *Tensor) Device() Device { return t.device }

// Data returns a copy of the tensor's elements in row-major order.
func (t *Tensor) Data() []float64 {
	d := make([]float64, len(t.data))
	copy(d, t.data)
	return d
}

// Grad returns a copy of the gradient accumulated by the last Backward
// call, or nil if none has run through this tensor.
func (t *Tensor) Grad() []float64 {
	if t.grad == nil {
		return nil
	}
	g := make([]float64, len(t.grad))
	copy(g, t.grad)
	return g
}

// Item returns the value of a single-element tensor. Panics otherwise.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor: Item on tensor of size %d", len(t.data)))
	}
	return t.data[0]
}

func (t *Tensor) compat(o *Tensor) {
	if t.device != o.device {
		panic(fmt.Sprintf("tensor: device mismatch: %s vs %s", t.device, o.device))
	}
	if !t.shape.Eq(o.shape) {
		panic(fmt.Sprintf("tensor: shape mismatch: %v vs %v", t.shape, o.shape))
	}
}
