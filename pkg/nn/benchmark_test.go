package nn

import (
	"math/rand/v2"
	"testing"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// BenchmarkNeuron benchmarks a single 16-input neuron
func BenchmarkNeuron(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 42))
	g := autograd.NewGraph()
	n := NewNeuron(g, 16, rng)
	x := NewUniform(g, 16, rng)
	mark := g.Len()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Truncate(mark)
		_, _ = n.Forward(x)
	}
}

// BenchmarkMLPForward benchmarks the 3→4→4→1 forward pass
func BenchmarkMLPForward(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 42))
	g := autograd.NewGraph()
	m := NewMLP(g, 3, []int{4, 4, 1}, rng)
	mark := g.Len()
	xs := []float64{2, 3, -1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Truncate(mark)
		_, _ = m.Forward(Inputs(g, xs))
	}
}

// BenchmarkBackward benchmarks the backward pass on a wide network's loss
func BenchmarkBackward(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 42))
	g := autograd.NewGraph()
	m := NewMLP(g, 16, []int{32, 32, 1}, rng)
	mark := g.Len()
	xs := make([]float64, 16)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g.Truncate(mark)
		out, _ := m.Forward(Inputs(g, xs))
		loss, _ := SquaredError(out, Inputs(g, []float64{1}))
		m.ZeroGrad()
		b.StartTimer()

		loss.Backward()
	}
}
