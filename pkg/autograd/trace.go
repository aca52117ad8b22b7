package autograd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Label returns the node's diagnostic label. Unlabelled leaves render their
// value and derived nodes render one level of expression over their operands,
// where an unlabelled derived operand appears as its handle, e.g. "#12 + b".
// Labels never take part in node identity.
func (v Value) Label() string {
	n := v.g.at(v.id)
	if n.label != "" {
		return n.label
	}
	switch n.op {
	case OpAdd:
		return v.g.operandLabel(n.lhs) + " + " + v.g.operandLabel(n.rhs)
	case OpMul:
		return v.g.operandLabel(n.lhs) + "*" + v.g.operandLabel(n.rhs)
	case OpPow:
		return v.g.operandLabel(n.lhs) + "^" + formatFloat(n.exp)
	case OpTanh:
		return "tanh(" + v.g.operandLabel(n.lhs) + ")"
	default:
		return formatFloat(n.data)
	}
}

// operandLabel never recurses, so label cost stays constant however deep or
// shared the graph is.
func (g *Graph) operandLabel(id NodeID) string {
	n := g.at(id)
	switch {
	case n.label != "":
		return n.label
	case n.op == OpLeaf:
		return formatFloat(n.data)
	default:
		return "#" + strconv.Itoa(int(id))
	}
}

// String renders the node as "[ label | val = v | grad = g ]".
func (v Value) String() string {
	return fmt.Sprintf("[ %s | val = %s | grad = %s ]", v.Label(), formatFloat(v.Data()), formatFloat(v.Grad()))
}

// Trace writes every node reachable from root, depth first, one per line,
// indented by its depth below root. A node reached along a second path is
// printed only the first time.
func Trace(w io.Writer, root Value) error {
	g := root.g
	visited := make([]bool, g.Len())

	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{root.id, 0}}
	var ops []NodeID

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("|   ", f.depth), g.Node(f.id)); err != nil {
			return err
		}

		ops = g.operands(ops[:0], f.id)
		for i := len(ops) - 1; i >= 0; i-- {
			stack = append(stack, frame{ops[i], f.depth + 1})
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
