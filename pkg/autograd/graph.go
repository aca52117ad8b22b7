// Package autograd implements a scalar reverse-mode automatic differentiation
// engine. Nodes live in an append-only arena (Graph) and are addressed by
// integer handles, so operand edges always point at earlier nodes and the
// graph is acyclic by construction.
package autograd

import "fmt"

// NodeID is a stable handle to a node inside a Graph.
type NodeID int32

// Op identifies the operation that produced a node.
type Op uint8

const (
	OpLeaf Op = iota // input or parameter; no operands
	OpAdd            // lhs + rhs
	OpMul            // lhs * rhs
	OpPow            // lhs ^ exp, with exp a constant stored on the node
	OpTanh           // tanh(lhs)
)

// String returns the operator symbol used in traces ("+", "*", "^") or the
// op's name for leaf and tanh.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "^"
	case OpTanh:
		return "tanh"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// arity returns how many operand slots op uses.
func (op Op) arity() int {
	switch op {
	case OpAdd, OpMul:
		return 2
	case OpPow, OpTanh:
		return 1
	default:
		return 0
	}
}

// node is one scalar computation stored by value in the arena.
type node struct {
	data  float64 // forward value
	grad  float64 // accumulated ∂output/∂node
	exp   float64 // exponent for OpPow
	op    Op
	lhs   NodeID
	rhs   NodeID
	label string
}

// Graph owns every node created through it. It is not safe for concurrent use.
type Graph struct {
	nodes []node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make([]node, 0, 256)}
}

// Len returns the number of nodes in the graph. It can be used as a mark for Truncate.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Truncate drops every node created at or after mark. Handles to dropped
// nodes must not be used afterwards; their slots are reused by later nodes.
func (g *Graph) Truncate(mark int) {
	if mark < 0 || mark > len(g.nodes) {
		panic(fmt.Sprintf("autograd: truncate mark %d out of range [0, %d]", mark, len(g.nodes)))
	}
	clear(g.nodes[mark:])
	g.nodes = g.nodes[:mark]
}

// ZeroGrads resets the gradient of every node in the graph.
func (g *Graph) ZeroGrads() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// NewValue creates a leaf node with the given data.
func (g *Graph) NewValue(data float64) Value {
	return g.push(node{data: data, op: OpLeaf})
}

// Scalar is an alias for NewValue, typically used for constants.
func (g *Graph) Scalar(data float64) Value {
	return g.NewValue(data)
}

// Named creates a labelled leaf node. Labels are for diagnostics only.
func (g *Graph) Named(label string, data float64) Value {
	return g.push(node{data: data, op: OpLeaf, label: label})
}

// Sum returns the left fold of Add over vs, or a zero constant when vs is empty.
func (g *Graph) Sum(vs ...Value) Value {
	if len(vs) == 0 {
		return g.Scalar(0)
	}
	acc := vs[0]
	acc.mustBelong(g)
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// Node returns a handle for id.
func (g *Graph) Node(id NodeID) Value {
	g.check(id)
	return Value{g: g, id: id}
}

func (g *Graph) push(n node) Value {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: id}
}

func (g *Graph) at(id NodeID) *node {
	return &g.nodes[id]
}

func (g *Graph) check(id NodeID) {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("autograd: node %d out of range [0, %d)", id, len(g.nodes)))
	}
}

// operands appends the operand handles of id to dst. A node that uses the
// same operand twice (a*a) reports it twice.
func (g *Graph) operands(dst []NodeID, id NodeID) []NodeID {
	n := g.at(id)
	switch n.op.arity() {
	case 2:
		return append(dst, n.lhs, n.rhs)
	case 1:
		return append(dst, n.lhs)
	default:
		return dst
	}
}
