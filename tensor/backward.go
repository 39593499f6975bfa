package tensor

// Backward runs reverse-mode differentiation treating t as the graph
// output, seeding dt/dt = 1. Gradients accumulate into every reachable
// tensor; gradients from previous Backward calls through the same graph
// are discarded first.
func (t *Tensor) Backward() {
	var order []*Tensor
	seen := make(map[*Tensor]bool)
	var visit func(n *Tensor)
	visit = func(n *Tensor) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, p := range n.parents {
			visit(p)
		}
		order = append(order, n)
	}
	visit(t)

	for _, n := range order {
		n.grad = make([]float64, len(n.data))
	}
	for i := range t.grad {
		t.grad[i] = 1
	}
	for i := len(order) - 1; i >= 0; i-- {
		if n := order[i]; n.backFn != nil {
			n.backFn(n.grad)
		}
	}
}
