package autograd

import "math"

// TopoSort returns every node reachable from root in post-order: each node
// appears exactly once and after all of its operands. Nodes reached along
// several paths are emitted on first completion only.
func (g *Graph) TopoSort(root NodeID) []NodeID {
	g.check(root)

	topo := make([]NodeID, 0, 64)
	visited := make([]bool, len(g.nodes))

	// Iterative DFS using explicit stack
	type stackItem struct {
		id   NodeID
		done bool
	}
	stack := []stackItem{{root, false}}
	var ops []NodeID

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.done {
			topo = append(topo, item.id)
			continue
		}
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		// Emit after operands
		stack = append(stack, stackItem{item.id, true})

		// Push in reverse so the left operand is explored first
		ops = g.operands(ops[:0], item.id)
		for i := len(ops) - 1; i >= 0; i-- {
			if !visited[ops[i]] {
				stack = append(stack, stackItem{ops[i], false})
			}
		}
	}

	return topo
}

// TopoSort returns the nodes reachable from v in post-order.
func (v Value) TopoSort() []Value {
	ids := v.g.TopoSort(v.id)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = Value{g: v.g, id: id}
	}
	return out
}

// Backward performs backpropagation starting from this Value.
// The gradient of this Value is set to 1 and every reachable node receives
// its contribution with +=. Gradients are not reset first: callers that
// reuse nodes across passes must zero them (ZeroGrad, Graph.ZeroGrads).
func (v Value) Backward() {
	g := v.g
	topo := g.TopoSort(v.id)

	g.at(v.id).grad = 1

	for i := len(topo) - 1; i >= 0; i-- {
		g.localBackward(topo[i])
	}
}

// localBackward pushes the node's gradient onto its operands.
func (g *Graph) localBackward(id NodeID) {
	n := g.at(id)
	grad := n.grad

	switch n.op {
	case OpAdd:
		g.nodes[n.lhs].grad += grad
		g.nodes[n.rhs].grad += grad
	case OpMul:
		lhs, rhs := g.nodes[n.lhs].data, g.nodes[n.rhs].data
		g.nodes[n.lhs].grad += rhs * grad
		g.nodes[n.rhs].grad += lhs * grad
	case OpPow:
		base := g.nodes[n.lhs].data
		g.nodes[n.lhs].grad += n.exp * math.Pow(base, n.exp-1) * grad
	case OpTanh:
		// n.data is tanh of the operand
		g.nodes[n.lhs].grad += (1 - n.data*n.data) * grad
	}
}
