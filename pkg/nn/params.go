package nn

import (
	"math/rand/v2"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// Module is anything that owns trainable leaf parameters.
type Module interface {
	Parameters() []autograd.Value
	ZeroGrad()
}

// NewUniform creates n leaf parameters drawn uniformly from [-1, 1).
func NewUniform(g *autograd.Graph, n int, rng *rand.Rand) []autograd.Value {
	params := make([]autograd.Value, n)
	for i := range params {
		params[i] = g.NewValue(rng.Float64()*2 - 1)
	}
	return params
}

// Inputs wraps plain floats as leaf nodes on g.
func Inputs(g *autograd.Graph, xs []float64) []autograd.Value {
	out := make([]autograd.Value, len(xs))
	for i, x := range xs {
		out[i] = g.NewValue(x)
	}
	return out
}

// ZeroGrads resets the gradient of every parameter of m.
func ZeroGrads(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
