// Package optim holds parameter update rules applied after a backward pass.
package optim

import "github.com/joelsearcy/micrograd-go/pkg/autograd"

// Optimizer updates parameters from their accumulated gradients.
type Optimizer interface {
	Step(params []autograd.Value)
}

// Resetter is implemented by optimizers that keep state between steps.
// Reset returns them to their freshly constructed state.
type Resetter interface {
	Reset()
}

// SGD is plain gradient descent: p -= LR * grad.
type SGD struct {
	LR float64
}

// NewSGD returns a gradient-descent optimizer with the given learning rate.
func NewSGD(lr float64) *SGD {
	return &SGD{LR: lr}
}

// Step moves every parameter against its gradient.
func (s *SGD) Step(params []autograd.Value) {
	for _, p := range params {
		p.AdjustData(-s.LR * p.Grad())
	}
}

var (
	_ Optimizer = (*SGD)(nil)
	_ Optimizer = (*AdamOptimizer)(nil)
	_ Resetter  = (*AdamOptimizer)(nil)
)
