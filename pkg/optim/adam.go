package optim

import (
	"math"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// AdamOptimizer implements the Adam optimization algorithm
type AdamOptimizer struct {
	LR      float64 // base learning rate
	Beta1   float64 // exponential decay rate for first moment
	Beta2   float64 // exponential decay rate for second moment
	Epsilon float64 // small constant for numerical stability

	m []float64 // first moment estimates
	v []float64 // second moment estimates
	t int       // timestep counter
}

// NewAdam creates a new Adam optimizer for numParams parameters.
func NewAdam(numParams int, lr, beta1, beta2, eps float64) *AdamOptimizer {
	return &AdamOptimizer{
		LR:      lr,
		Beta1:   beta1,
		Beta2:   beta2,
		Epsilon: eps,
		m:       make([]float64, numParams),
		v:       make([]float64, numParams),
		t:       0,
	}
}

// Step performs one optimization step at the base learning rate.
func (opt *AdamOptimizer) Step(params []autograd.Value) {
	opt.StepDecay(params, 1)
}

// StepDecay performs one optimization step.
// lrDecay is multiplied with base LR (for learning rate scheduling).
// Gradients are left in place; callers zero them before the next backward pass.
func (opt *AdamOptimizer) StepDecay(params []autograd.Value, lrDecay float64) {
	if len(params) != len(opt.m) {
		panic("optim: Adam built for a different parameter count")
	}

	opt.t++

	// Bias correction terms
	bc1 := 1 - math.Pow(opt.Beta1, float64(opt.t))
	bc2 := 1 - math.Pow(opt.Beta2, float64(opt.t))

	for i, p := range params {
		g := p.Grad()

		opt.m[i] = opt.Beta1*opt.m[i] + (1-opt.Beta1)*g
		opt.v[i] = opt.Beta2*opt.v[i] + (1-opt.Beta2)*g*g

		mHat := opt.m[i] / bc1
		vHat := opt.v[i] / bc2

		p.AdjustData(-opt.LR * lrDecay * mHat / (math.Sqrt(vHat) + opt.Epsilon))
	}
}

// Reset resets the optimizer state for a new training run
func (opt *AdamOptimizer) Reset() {
	clear(opt.m)
	clear(opt.v)
	opt.t = 0
}
