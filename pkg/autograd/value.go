package autograd

import (
	"math"
)

// Value is a handle to a scalar node in a Graph.
// It is cheap to copy; two Values are the same node when their IDs and graphs match.
type Value struct {
	g  *Graph
	id NodeID
}

// ID returns the node's handle within its graph.
func (v Value) ID() NodeID { return v.id }

// Graph returns the graph that owns the node.
func (v Value) Graph() *Graph { return v.g }

// Data returns the forward value.
func (v Value) Data() float64 { return v.g.at(v.id).data }

// Grad returns the gradient accumulated by the last backward pass.
func (v Value) Grad() float64 { return v.g.at(v.id).grad }

// Op returns the operation that produced the node.
func (v Value) Op() Op { return v.g.at(v.id).op }

// Exponent returns the constant exponent of a Pow node, and 0 otherwise.
func (v Value) Exponent() float64 { return v.g.at(v.id).exp }

// Operands returns the nodes this node was computed from.
func (v Value) Operands() []Value {
	ids := v.g.operands(nil, v.id)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = Value{g: v.g, id: id}
	}
	return out
}

// AdjustData adds delta to the node's value. It is meant for leaf
// parameters; derived nodes are not recomputed.
func (v Value) AdjustData(delta float64) { v.g.at(v.id).data += delta }

// SetData overwrites the node's value.
func (v Value) SetData(data float64) { v.g.at(v.id).data = data }

// ZeroGrad resets the gradient of this Value to 0.
func (v Value) ZeroGrad() { v.g.at(v.id).grad = 0 }

// SetLabel attaches a diagnostic label and returns v.
func (v Value) SetLabel(label string) Value {
	v.g.at(v.id).label = label
	return v
}

// Add returns a new Value representing self + other.
func (v Value) Add(other Value) Value {
	other.mustBelong(v.g)
	return v.g.push(node{
		data: v.Data() + other.Data(),
		op:   OpAdd,
		lhs:  v.id,
		rhs:  other.id,
	})
}

// Mul returns a new Value representing self * other.
func (v Value) Mul(other Value) Value {
	other.mustBelong(v.g)
	return v.g.push(node{
		data: v.Data() * other.Data(),
		op:   OpMul,
		lhs:  v.id,
		rhs:  other.id,
	})
}

// Pow returns a new Value representing self^exp. The exponent is a constant
// and receives no gradient.
func (v Value) Pow(exp float64) Value {
	return v.g.push(node{
		data: math.Pow(v.Data(), exp),
		exp:  exp,
		op:   OpPow,
		lhs:  v.id,
	})
}

// Tanh returns a new Value representing tanh(self). It uses math.Tanh, which
// saturates to ±1 for large |x| where (e^2x - 1)/(e^2x + 1) overflows to NaN.
func (v Value) Tanh() Value {
	return v.g.push(node{
		data: math.Tanh(v.Data()),
		op:   OpTanh,
		lhs:  v.id,
	})
}

// Neg returns a new Value representing -self.
// Implemented as self * (-1)
func (v Value) Neg() Value {
	return v.Mul(v.g.Scalar(-1))
}

// Sub returns a new Value representing self - other.
// Implemented as self + other*(-1)
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Div returns a new Value representing self / other.
// Implemented as self * other^(-1)
func (v Value) Div(other Value) Value {
	return v.Mul(other.Pow(-1))
}

func (v Value) mustBelong(g *Graph) {
	if v.g != g {
		panic("autograd: operands belong to different graphs")
	}
}
