package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// MLP is a stack of fully connected tanh layers.
type MLP struct {
	Layers []*Layer
	NIn    int

	allParams []autograd.Value // cached flat list
}

// NewMLP creates layers of the given sizes on top of nin inputs.
// NewMLP(g, 3, []int{4, 4, 1}, rng) builds a 3→4→4→1 network.
func NewMLP(g *autograd.Graph, nin int, nouts []int, rng *rand.Rand) *MLP {
	m := &MLP{Layers: make([]*Layer, len(nouts)), NIn: nin}
	in := nin
	for i, out := range nouts {
		m.Layers[i] = NewLayer(g, in, out, rng)
		m.allParams = append(m.allParams, m.Layers[i].Parameters()...)
		in = out
	}
	return m
}

// Forward runs x through every layer.
func (m *MLP) Forward(x []autograd.Value) ([]autograd.Value, error) {
	var err error
	for i, l := range m.Layers {
		x, err = l.Forward(x)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return x, nil
}

// Predict builds the inputs from xs on g and returns the plain output values.
// Nodes it creates are removed from g before returning.
func (m *MLP) Predict(g *autograd.Graph, xs []float64) ([]float64, error) {
	mark := g.Len()
	defer g.Truncate(mark)

	out, err := m.Forward(Inputs(g, xs))
	if err != nil {
		return nil, err
	}
	preds := make([]float64, len(out))
	for i, v := range out {
		preds[i] = v.Data()
	}
	return preds, nil
}

// Parameters returns flattened list of all parameters (cached).
func (m *MLP) Parameters() []autograd.Value { return m.allParams }

// ZeroGrad resets all parameter gradients to 0.
func (m *MLP) ZeroGrad() { ZeroGrads(m) }
