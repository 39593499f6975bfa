package tensor

import (
	"math"
	"testing"
)

func TestNewShapeChecks(t *testing.T) {
	x := New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if x.Size() != 6 {
		t.Errorf("expected size 6, got %d", x.Size())
	}
	if !x.Shape().Eq(Shape{2, 3}) {
		t.Errorf("expected shape [2 3], got %v", x.Shape())
	}
	if x.Device() != CPU {
		t.Errorf("expected cpu device, got %s", x.Device())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched shape")
		}
	}()
	New([]float64{1, 2, 3}, 2, 2)
}

func TestDataIsACopy(t *testing.T) {
	src := []float64{1, 2}
	x := New(src)
	src[0] = 99
	if x.Data()[0] != 1 {
		t.Error("New must copy its input")
	}
	out := x.Data()
	out[1] = 99
	if x.Data()[1] != 2 {
		t.Error("Data must return a copy")
	}
}

func TestElementwiseForward(t *testing.T) {
	x := New([]float64{-1.5, 0, 0.5, 2})
	cases := []struct {
		name string
		got  *Tensor
		want func(v float64) float64
	}{
		{"Scale", x.Scale(3), func(v float64) float64 { return 3 * v }},
		{"Shift", x.Shift(-2), func(v float64) float64 { return v - 2 }},
		{"Abs", x.Abs(), math.Abs},
		{"Exp", x.Exp(), math.Exp},
		{"Cos", x.Cos(), math.Cos},
		{"Cosh", x.Cosh(), math.Cosh},
		{"Tanh", x.Tanh(), math.Tanh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, v := range x.Data() {
				want := tc.want(v)
				if got := tc.got.Data()[i]; got != want {
					t.Errorf("element %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestBinaryOps(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{4, 5, 6})
	sum := a.Add(b).Data()
	diff := a.Sub(b).Data()
	prod := a.Mul(b).Data()
	for i := range sum {
		if sum[i] != a.Data()[i]+b.Data()[i] {
			t.Errorf("Add element %d: got %v", i, sum[i])
		}
		if diff[i] != a.Data()[i]-b.Data()[i] {
			t.Errorf("Sub element %d: got %v", i, diff[i])
		}
		if prod[i] != a.Data()[i]*b.Data()[i] {
			t.Errorf("Mul element %d: got %v", i, prod[i])
		}
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for shape mismatch")
		}
	}()
	New([]float64{1, 2}).Add(New([]float64{1, 2, 3}))
}

func TestBackwardChain(t *testing.T) {
	// y = (2x + 1) * x, dy/dx = 4x + 1
	x := New([]float64{-2, 0, 0.5, 3}).RequireGrad()
	y := x.Scale(2).Shift(1).Mul(x)
	y.Backward()

	for i, v := range x.Data() {
		wantY := (2*v + 1) * v
		if got := y.Data()[i]; math.Abs(got-wantY) > 1e-12 {
			t.Errorf("forward element %d: got %v, want %v", i, got, wantY)
		}
		wantG := 4*v + 1
		if got := x.Grad()[i]; math.Abs(got-wantG) > 1e-12 {
			t.Errorf("gradient element %d: got %v, want %v", i, got, wantG)
		}
	}
}

func TestBackwardTranscendentals(t *testing.T) {
	x := New([]float64{0.3, 1.2}).RequireGrad()
	y := x.Exp().Recip() // y = exp(-x), dy/dx = -exp(-x)
	y.Backward()
	for i, v := range x.Data() {
		want := -math.Exp(-v)
		if got := x.Grad()[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("element %d: got %v, want %v", i, got, want)
		}
	}
}

func TestBackwardResetsGradients(t *testing.T) {
	x := New([]float64{2}).RequireGrad()
	y := x.Scale(3)
	y.Backward()
	y.Backward()
	if got := x.Grad()[0]; got != 3 {
		t.Errorf("gradient must not accumulate across Backward calls: got %v", got)
	}
}

func TestMasksAndSelect(t *testing.T) {
	x := New([]float64{-1, 0, 1, 2})
	mask := And(x.Ge(0), x.Le(1))
	want := []float64{0, 1, 1, 0}
	for i, m := range mask.Data() {
		if m != want[i] {
			t.Errorf("mask element %d: got %v, want %v", i, m, want[i])
		}
	}

	sel := Select(mask, FullLike(x, 1), x.Scale(10))
	wantSel := []float64{-10, 1, 1, 20}
	for i, v := range sel.Data() {
		if v != wantSel[i] {
			t.Errorf("select element %d: got %v, want %v", i, v, wantSel[i])
		}
	}
}

func TestSelectSuppressesDiscardedNaN(t *testing.T) {
	x := New([]float64{math.Inf(1), 0.5}).RequireGrad()
	// cos(+inf) is NaN; the mask discards that element.
	y := Select(x.Lt(1), x.Cos(), FullLike(x, 0))
	y.Backward()

	if got := y.Data()[0]; got != 0 {
		t.Errorf("discarded NaN must be replaced by 0, got %v", got)
	}
	if got := y.Data()[1]; math.Abs(got-math.Cos(0.5)) > 1e-12 {
		t.Errorf("kept element: got %v, want %v", got, math.Cos(0.5))
	}
	if got := x.Grad()[0]; got != 0 {
		t.Errorf("discarded element must contribute zero gradient, got %v", got)
	}
	if got, want := x.Grad()[1], -math.Sin(0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("kept element gradient: got %v, want %v", got, want)
	}
}

func TestItem(t *testing.T) {
	if got := Full(7).Item(); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Item on multi-element tensor")
		}
	}()
	New([]float64{1, 2}).Item()
}
