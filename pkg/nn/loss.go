package nn

import (
	"github.com/pkg/errors"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

// SquaredError returns Σ (pred - target)².
func SquaredError(preds, targets []autograd.Value) (autograd.Value, error) {
	if len(preds) != len(targets) {
		return autograd.Value{}, errors.Wrapf(ErrArity, "%d predictions for %d targets", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return autograd.Value{}, errors.Wrap(ErrArity, "no predictions")
	}

	terms := make([]autograd.Value, len(preds))
	for i := range preds {
		terms[i] = preds[i].Sub(targets[i]).Pow(2)
	}
	return preds[0].Graph().Sum(terms...), nil
}
