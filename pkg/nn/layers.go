package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// ErrArity reports an input vector whose length does not match what a unit expects.
var ErrArity = errors.New("input arity mismatch")

// Neuron computes tanh(w · x + b).
type Neuron struct {
	W []autograd.Value
	B autograd.Value

	params []autograd.Value
}

// NewNeuron creates a neuron with nin weights and a bias, all drawn from rng.
func NewNeuron(g *autograd.Graph, nin int, rng *rand.Rand) *Neuron {
	w := NewUniform(g, nin, rng)
	b := NewUniform(g, 1, rng)[0]
	params := make([]autograd.Value, 0, nin+1)
	params = append(params, w...)
	params = append(params, b)
	return &Neuron{W: w, B: b, params: params}
}

// Forward builds the neuron's output node for input x.
func (n *Neuron) Forward(x []autograd.Value) (autograd.Value, error) {
	if len(x) != len(n.W) {
		return autograd.Value{}, errors.Wrapf(ErrArity, "neuron expects %d inputs, got %d", len(n.W), len(x))
	}

	products := make([]autograd.Value, len(x))
	for i, xi := range x {
		products[i] = xi.Mul(n.W[i])
	}
	act := n.B.Graph().Sum(products...).Add(n.B)
	return act.Tanh(), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autograd.Value { return n.params }

// ZeroGrad resets all parameter gradients to 0.
func (n *Neuron) ZeroGrad() { ZeroGrads(n) }

// Layer is a row of independent neurons sharing the same input.
type Layer struct {
	Neurons []*Neuron

	params []autograd.Value
}

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(g *autograd.Graph, nin, nout int, rng *rand.Rand) *Layer {
	l := &Layer{Neurons: make([]*Neuron, nout)}
	for i := range l.Neurons {
		l.Neurons[i] = NewNeuron(g, nin, rng)
		l.params = append(l.params, l.Neurons[i].Parameters()...)
	}
	return l
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []autograd.Value) ([]autograd.Value, error) {
	out := make([]autograd.Value, len(l.Neurons))
	for i, n := range l.Neurons {
		v, err := n.Forward(x)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []autograd.Value { return l.params }

// ZeroGrad resets all parameter gradients to 0.
func (l *Layer) ZeroGrad() { ZeroGrads(l) }
